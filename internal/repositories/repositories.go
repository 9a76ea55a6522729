// Package repository holds all session state. Everything lives in process
// memory for the lifetime of one run; there is no persistence layer. Each
// store guards its state with its own mutex and exposes the only mutation
// entry points the rest of the service may use.
package repository

type Repositories struct {
	Cart     *CartStore
	Orders   *OrderStore
	Images   *ImageStore
	Session  *SessionStore
	Reviews  *ReviewStore
	Wishlist *WishlistStore
	Partners *PartnerStore
}

func New() *Repositories {
	return &Repositories{
		Cart:     NewCartStore(),
		Orders:   NewOrderStore(),
		Images:   NewImageStore(),
		Session:  NewSessionStore(),
		Reviews:  NewReviewStore(),
		Wishlist: NewWishlistStore(),
		Partners: NewPartnerStore(),
	}
}
