// Package shop is a small demo storefront built from weblib components.
//
// It serves a home page with featured products, paginated category pages,
// product pages with breadcrumbs, a cart page and a JSON endpoint that adds
// products to a process-wide cart. The catalogue is held in memory.
package shop
