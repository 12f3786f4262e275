package css

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrUnknownFramework is returned by Lookup for an unregistered name.
var ErrUnknownFramework = errors.New("css: unknown framework")

// Classes holds the structural class names of a CSS framework.
type Classes struct {
	Container string
	Row       string
	Col       string

	Card       string
	CardHeader string
	CardBody   string
	CardTitle  string
	CardText   string
	CardFooter string
	CardImage  string

	Navbar      string
	NavbarBrand string
	NavbarNav   string
	NavLink     string

	Breadcrumb     string
	BreadcrumbItem string
	Pagination     string
	PageItem       string
	Active         string
	Disabled       string
	Close          string

	Modal        string
	ModalDialog  string
	ModalSize    string // Prefix of the size modifier, e.g. "modal-" for modal-lg. Empty ignores sizes.
	ModalContent string
	ModalHeader  string
	ModalTitle   string
	ModalBody    string
	ModalFooter  string
}

// Framework maps component concepts to the class names of one CSS framework.
// Implementations are immutable and safe for concurrent use.
type Framework interface {
	// Name returns the framework identifier, e.g. "bootstrap".
	Name() string

	// Classes returns the structural class table.
	Classes() Classes

	// Alert returns the classes of an alert box with the given variant.
	Alert(variant string) []string

	// Badge returns the classes of a badge with the given variant.
	Badge(variant string) []string

	// Button returns the classes of a button with the given variant.
	Button(variant string) []string

	// Margin returns a margin utility class. side is "" for all sides or
	// one of t, b, s, e, x, y (l and r are accepted as s and e).
	Margin(size int, side string) string

	// Padding returns a padding utility class with the same side rules as Margin.
	Padding(size int, side string) string

	// Color returns a colour utility class; kind is "bg" or "text".
	Color(color, kind string) string
}

var frameworks = map[string]Framework{
	"bootstrap": Bootstrap,
	"tailwind":  Tailwind,
	"bulma":     Bulma,
}

// Lookup returns the framework registered under name.
func Lookup(name string) (Framework, error) {
	fw, ok := frameworks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFramework, name)
	}
	return fw, nil
}

// Names returns the known framework names in sorted order.
func Names() []string {
	names := make([]string, 0, len(frameworks))
	for name := range frameworks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OrDefault returns fw, or Bootstrap when fw is nil.
func OrDefault(fw Framework) Framework {
	if fw == nil {
		return Bootstrap
	}
	return fw
}

// spacing builds "<prefix><side>-<size>" after mapping side through sides.
func spacing(prefix string, size int, side string, sides map[string]string) string {
	if mapped, ok := sides[side]; ok {
		side = mapped
	}
	return prefix + side + "-" + strconv.Itoa(size)
}
