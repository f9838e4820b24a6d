// Package branding centralizes product naming so every surface renders the
// same name.
package branding

// AppName is the public product name shown in page titles and navigation.
const AppName = "Dr. Online"
