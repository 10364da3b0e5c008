// Package theme provides the colors of the editor window. Themes are either
// built in or read from small `Key: #RRGGBB` files.
package theme
