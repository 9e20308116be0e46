/*
Package i18n resolves display and explanatory copy for trees and nodes.

It only queries a localization catalog; it never manages translations. Keys are
dotted paths:

	<tree>.display_name
	<tree>.explanatory
	<tree>.<node>.display_name
	<tree>.<node>.explanatory

Precedence is explicit value, then catalog, then a humanized identifier for
display names. Explanatory copy has no derived default.
*/
package i18n
