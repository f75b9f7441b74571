// Package subscription defines feed subscription models.
package subscription

// Subscription represents a single feed reference read from the input list.
type Subscription struct {
	URL  string
	Line int
}
