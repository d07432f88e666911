package cart

import "fmt"

type NoticeKind string

const (
	NoticeNone            NoticeKind = ""
	NoticeAdded           NoticeKind = "added"
	NoticeQuantityUpdated NoticeKind = "quantity_updated"
	NoticeRemoved         NoticeKind = "removed"
	NoticeCleared         NoticeKind = "cleared"
)

// Notice describes what a transition did, for display to the shopper.
type Notice struct {
	Kind    NoticeKind `json:"kind,omitempty"`
	Message string     `json:"message,omitempty"`
}

func (n Notice) IsZero() bool {
	return n.Kind == NoticeNone
}

func added(name string) Notice {
	return Notice{Kind: NoticeAdded, Message: fmt.Sprintf("%s added to cart!", name)}
}

func quantityUpdated(name string) Notice {
	return Notice{Kind: NoticeQuantityUpdated, Message: fmt.Sprintf("%s quantity updated!", name)}
}

func removed(name string) Notice {
	return Notice{Kind: NoticeRemoved, Message: fmt.Sprintf("%s removed from cart", name)}
}

var cleared = Notice{Kind: NoticeCleared, Message: "Cart cleared successfully!"}
