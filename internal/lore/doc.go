// Package lore converts markdown lore pages into standalone HTML
// documents styled like the gallery pages.
package lore
