// Package catalog holds the client-side state of the topping and pizza screens
// and keeps it consistent with the remote store.
package catalog

import "github.com/franciscosanchezn/pizza-manager/internal/config"

var log = config.NewLogger()
