package services

import "errors"

// Expected business outcomes are sentinel errors so handlers can branch on
// the kind with errors.Is instead of matching message strings.
var (
	// ErrEmailTaken means an account with that email already exists.
	ErrEmailTaken = errors.New("user already registered.")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password.")

	// ErrBlogNotFound means no blog matches the requested id.
	ErrBlogNotFound = errors.New("blog not found.")

	// ErrNotOwner means the caller is not the owner of the blog.
	ErrNotOwner = errors.New("blog does not belong to the user.")

	// ErrOwnerNotFound means the creating user's identity did not resolve.
	ErrOwnerNotFound = errors.New("user not found.")
)
