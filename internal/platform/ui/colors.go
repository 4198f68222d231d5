// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Palette
var (
	EmberOrange = pterm.NewRGB(255, 107, 53)
	MoltenGold  = pterm.NewRGB(255, 182, 39)
	InfernoRed  = pterm.NewRGB(215, 38, 56)
	AshGray     = pterm.NewRGB(110, 110, 110)
	GhostCyan   = pterm.NewRGB(0, 206, 209)
)

// Estilos preconfigurados para los presenters
var (
	StylePrimary   = EmberOrange.ToRGBStyle()
	StyleSuccess   = GhostCyan.ToRGBStyle()
	StyleWarning   = MoltenGold.ToRGBStyle()
	StyleError     = InfernoRed.ToRGBStyle()
	StyleSecondary = AshGray.ToRGBStyle()
)
