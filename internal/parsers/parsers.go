// Package parsers imports all country parser packages to trigger their init()
// registration. Import this package for side effects only.
package parsers

import (
	// Import all country packages to register them with the registry.
	_ "address_parser/internal/parsers/br"
	_ "address_parser/internal/parsers/de"
	_ "address_parser/internal/parsers/mx"
	_ "address_parser/internal/parsers/us"
)
