package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"

	"renate-frame/types"
)

var (
	cfgFile = "renate-frame/config.json"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("printable", validatePrintable)
	_ = validate.RegisterValidation("gamemode", validateMode)
}

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors are indices into the 256-color terminal palette.
type ConfigColors struct {
	First        int `json:"first" validate:"min=0,max=255"`
	FirstOld     int `json:"first_old" validate:"min=0,max=255"`
	Second       int `json:"second" validate:"min=0,max=255"`
	SecondOld    int `json:"second_old" validate:"min=0,max=255"`
	Empty        int `json:"empty" validate:"min=0,max=255"`
	Ruler        int `json:"ruler" validate:"min=0,max=255"`
	Title        int `json:"title" validate:"min=0,max=255"`
	Menu         int `json:"menu" validate:"min=0,max=255"`
	Information  int `json:"information" validate:"min=0,max=255"`
	Error        int `json:"error" validate:"min=0,max=255"`
	CursorBG     int `json:"cursor_bg" validate:"min=0,max=255"`
	SelectionBG  int `json:"selection_bg" validate:"min=0,max=255"`
	LastPlayedBG int `json:"last_played_bg" validate:"min=0,max=255"`
}

type ConfigSymbols struct {
	Cell   rune `json:"cell" validate:"printable"`
	Cursor rune `json:"cursor" validate:"printable"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameConfig holds the defaults for a new game.
type GameConfig struct {
	Mode   types.Mode `json:"mode" validate:"gamemode"`
	Width  int        `json:"width" validate:"min=3,max=25"`
	Height int        `json:"height" validate:"min=3,max=25"`
}

// LogConfig selects what is logged and where. An empty file means the
// default location in the XDG state directory.
type LogConfig struct {
	Level string `json:"level" validate:"oneof=debug info warn error"`
	File  string `json:"file"`
}

type Config struct {
	Theme Theme      `json:"theme"`
	Game  GameConfig `json:"game"`
	Log   LogConfig  `json:"log"`
}

// InitConfig loads the configuration from the XDG config directories,
// falling back to DefaultConfig when there is no file.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, nil
	}
	return Load(absPath)
}

// Load reads the configuration at filePath. Fields missing from the file
// keep their default values.
func Load(filePath string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(filePath, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &InvalidConfig{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "printable":
			msgs = append(msgs, fmt.Sprintf("%s: Unicode characters 1-31 and 127-159 are not allowed", fe.Namespace()))
		case "gamemode":
			msgs = append(msgs, fmt.Sprintf("%s: unknown mode", fe.Namespace()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		}
	}
	return &InvalidConfig{strings.Join(msgs, "; ")}
}

// Save writes the configuration to the user's XDG config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return c.SaveTo(absPath)
}

// SaveTo writes the configuration to filePath.
func (c *Config) SaveTo(filePath string) error {
	return saveCfgFile(filePath, c, 0664)
}

func validatePrintable(fl validator.FieldLevel) bool {
	r := fl.Field().Int()
	return r >= 32 && (r < 127 || r > 159)
}

func validateMode(fl validator.FieldLevel) bool {
	m, ok := fl.Field().Interface().(types.Mode)
	return ok && m.Valid()
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(configReader, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
