package config

import "renate-frame/types"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: false,
		Colors: ConfigColors{
			First:        2,
			FirstOld:     10,
			Second:       4,
			SecondOld:    12,
			Empty:        15,
			Ruler:        8,
			Title:        6,
			Menu:         5,
			Information:  3,
			Error:        1,
			CursorBG:     3,
			SelectionBG:  11,
			LastPlayedBG: 8,
		},
		Symbols: ConfigSymbols{
			Cell:   '■',
			Cursor: '□',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			Mode:   types.RenateVsYou,
			Width:  9,
			Height: 9,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
