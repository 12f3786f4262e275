package css

// Bootstrap is Bootstrap 5.
var Bootstrap Framework = bootstrap{}

// Tailwind is Tailwind CSS 3 with a fixed semantic palette.
var Tailwind Framework = tailwind{}

// Bulma is Bulma 0.9.
var Bulma Framework = bulma{}

type bootstrap struct{}

var bootstrapClasses = Classes{
	Container:      "container",
	Row:            "row",
	Col:            "col",
	Card:           "card",
	CardHeader:     "card-header",
	CardBody:       "card-body",
	CardTitle:      "card-title",
	CardText:       "card-text",
	CardFooter:     "card-footer",
	CardImage:      "card-img-top",
	Navbar:         "navbar",
	NavbarBrand:    "navbar-brand",
	NavbarNav:      "navbar-nav",
	NavLink:        "nav-link",
	Breadcrumb:     "breadcrumb",
	BreadcrumbItem: "breadcrumb-item",
	Pagination:     "pagination",
	PageItem:       "page-item",
	Active:         "active",
	Disabled:       "disabled",
	Close:          "btn-close",
	Modal:          "modal fade",
	ModalDialog:    "modal-dialog",
	ModalSize:      "modal-",
	ModalContent:   "modal-content",
	ModalHeader:    "modal-header",
	ModalTitle:     "modal-title",
	ModalBody:      "modal-body",
	ModalFooter:    "modal-footer",
}

var bootstrapSides = map[string]string{"l": "s", "r": "e"}

func (bootstrap) Name() string             { return "bootstrap" }
func (bootstrap) Classes() Classes         { return bootstrapClasses }
func (bootstrap) Alert(v string) []string  { return []string{"alert", "alert-" + v} }
func (bootstrap) Badge(v string) []string  { return []string{"badge", "bg-" + v} }
func (bootstrap) Button(v string) []string { return []string{"btn", "btn-" + v} }

func (bootstrap) Margin(size int, side string) string {
	return spacing("m", size, side, bootstrapSides)
}

func (bootstrap) Padding(size int, side string) string {
	return spacing("p", size, side, bootstrapSides)
}

func (bootstrap) Color(color, kind string) string {
	return kind + "-" + color
}

type tailwind struct{}

var tailwindClasses = Classes{
	Container:      "container mx-auto",
	Row:            "flex flex-wrap",
	Col:            "flex-1",
	Card:           "rounded-lg shadow bg-white",
	CardHeader:     "px-4 py-2 border-b",
	CardBody:       "p-4",
	CardTitle:      "text-lg font-semibold",
	CardText:       "text-gray-700",
	CardFooter:     "px-4 py-2 border-t",
	CardImage:      "w-full rounded-t-lg",
	Navbar:         "flex items-center justify-between p-4",
	NavbarBrand:    "text-xl font-bold",
	NavbarNav:      "flex gap-4",
	NavLink:        "hover:underline",
	Breadcrumb:     "flex gap-2 text-sm",
	BreadcrumbItem: "text-gray-600",
	Pagination:     "flex gap-1",
	PageItem:       "px-3 py-1 border rounded",
	Active:         "font-bold",
	Disabled:       "opacity-50",
	Close:          "ml-auto",
	Modal:          "fixed inset-0 hidden bg-black/50",
	ModalDialog:    "mx-auto mt-16 max-w-lg",
	ModalContent:   "rounded-lg bg-white shadow",
	ModalHeader:    "flex items-center p-4 border-b",
	ModalTitle:     "text-lg font-semibold",
	ModalBody:      "p-4",
	ModalFooter:    "flex justify-end gap-2 p-4 border-t",
}

// tailwindPalette maps semantic colour names to palette shades.
var tailwindPalette = map[string]string{
	"primary":   "blue-600",
	"secondary": "gray-600",
	"success":   "green-600",
	"danger":    "red-600",
	"warning":   "yellow-500",
	"info":      "sky-500",
	"light":     "gray-100",
	"dark":      "gray-900",
}

var tailwindSides = map[string]string{"l": "s", "r": "e"}

func (tailwind) Name() string     { return "tailwind" }
func (tailwind) Classes() Classes { return tailwindClasses }

func (t tailwind) Alert(v string) []string {
	return []string{"p-4", "rounded", t.Color(v, "bg"), "text-white"}
}

func (t tailwind) Badge(v string) []string {
	return []string{"px-2", "rounded", "text-xs", t.Color(v, "bg"), "text-white"}
}

func (t tailwind) Button(v string) []string {
	return []string{"px-4", "py-2", "rounded", t.Color(v, "bg"), "text-white"}
}

func (tailwind) Margin(size int, side string) string {
	return spacing("m", size, side, tailwindSides)
}

func (tailwind) Padding(size int, side string) string {
	return spacing("p", size, side, tailwindSides)
}

func (tailwind) Color(color, kind string) string {
	if shade, ok := tailwindPalette[color]; ok {
		color = shade
	}
	return kind + "-" + color
}

type bulma struct{}

var bulmaClasses = Classes{
	Container:      "container",
	Row:            "columns",
	Col:            "column",
	Card:           "card",
	CardHeader:     "card-header",
	CardBody:       "card-content",
	CardTitle:      "title is-5",
	CardText:       "content",
	CardFooter:     "card-footer",
	CardImage:      "card-image",
	Navbar:         "navbar",
	NavbarBrand:    "navbar-item",
	NavbarNav:      "navbar-start",
	NavLink:        "navbar-item",
	Breadcrumb:     "breadcrumb",
	BreadcrumbItem: "",
	Pagination:     "pagination-list",
	PageItem:       "",
	Active:         "is-active",
	Disabled:       "is-disabled",
	Close:          "delete",
	Modal:          "modal",
	ModalDialog:    "modal-card",
	ModalContent:   "",
	ModalHeader:    "modal-card-head",
	ModalTitle:     "modal-card-title",
	ModalBody:      "modal-card-body",
	ModalFooter:    "modal-card-foot",
}

var bulmaSides = map[string]string{"s": "l", "e": "r"}

func (bulma) Name() string             { return "bulma" }
func (bulma) Classes() Classes         { return bulmaClasses }
func (bulma) Alert(v string) []string  { return []string{"notification", "is-" + v} }
func (bulma) Badge(v string) []string  { return []string{"tag", "is-" + v} }
func (bulma) Button(v string) []string { return []string{"button", "is-" + v} }

func (bulma) Margin(size int, side string) string {
	return spacing("m", size, side, bulmaSides)
}

func (bulma) Padding(size int, side string) string {
	return spacing("p", size, side, bulmaSides)
}

func (bulma) Color(color, kind string) string {
	if kind == "bg" {
		return "has-background-" + color
	}
	return "has-" + kind + "-" + color
}
