package core

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"qlaunch/internal/domain"
	"qlaunch/internal/game"
	"qlaunch/internal/steam"
	"qlaunch/internal/storage/config"
	"qlaunch/internal/storage/db"

	"github.com/charmbracelet/log"
)

// ServiceConfig holds configuration for the core service
type ServiceConfig struct {
	ConfigDir  string // Directory for configuration files
	ConfigFile string // Explicit configuration file, replaces ConfigDir/config.yaml
	DataDir    string // Directory for the database
	Logger     *log.Logger
	Registry   *game.Registry // Supported games, game.Default() when nil
}

// Service owns the active game and everything the commands need around it.
type Service struct {
	config   *config.Config
	db       *db.DB
	registry *game.Registry
	handler  *game.Handler
	log      *log.Logger

	configDir  string
	configFile string
	dataDir    string
}

// NewService creates a new core service instance
func NewService(cfg ServiceConfig) (*Service, error) {
	var (
		appConfig *config.Config
		err       error
	)
	if cfg.ConfigFile != "" {
		appConfig, err = config.LoadFile(cfg.ConfigFile)
	} else {
		appConfig, err = config.Load(cfg.ConfigDir)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	database, err := db.New(filepath.Join(cfg.DataDir, "qlaunch.db"))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	registry := cfg.Registry
	if registry == nil {
		registry = game.Default()
	}

	return &Service{
		config:     appConfig,
		db:         database,
		registry:   registry,
		log:        logger,
		configDir:  cfg.ConfigDir,
		configFile: cfg.ConfigFile,
		dataDir:    cfg.DataDir,
	}, nil
}

// Close releases resources held by the service
func (s *Service) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Config returns the loaded configuration.
func (s *Service) Config() *config.Config { return s.config }

// SaveConfig writes the configuration back where it was loaded from.
func (s *Service) SaveConfig() error {
	if s.configFile != "" {
		return s.config.SaveFile(s.configFile)
	}
	return s.config.Save(s.configDir)
}

// DB returns the database
func (s *Service) DB() *db.DB { return s.db }

// Registry returns the supported games.
func (s *Service) Registry() *game.Registry { return s.registry }

// ConfigDir returns the configuration directory
func (s *Service) ConfigDir() string { return s.configDir }

// SelectGame detects and sets up the game at gamePath, or at the configured
// game path when gamePath is empty. The install is remembered.
func (s *Service) SelectGame(gamePath string) (*game.Handler, error) {
	if gamePath == "" {
		gamePath = s.config.GamePath
	}
	if gamePath == "" {
		return nil, fmt.Errorf("no game path given or configured: %w", domain.ErrNoActiveGame)
	}
	abs, err := filepath.Abs(gamePath)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", gamePath, err)
	}

	h, err := s.registry.Select(abs, game.WithLogger(s.log))
	if err != nil {
		return nil, err
	}
	s.handler = h

	known, err := s.db.GetInstall(h.GamePath())
	if err != nil {
		return nil, err
	}
	if known == nil {
		if err := s.db.SaveInstall(db.Install{Path: h.GamePath(), GameTitle: h.Title(), Source: db.SourceManual}); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Game returns the active game.
func (s *Service) Game() (*game.Handler, error) {
	if s.handler == nil {
		return nil, domain.ErrNoActiveGame
	}
	return s.handler, nil
}

// Mods lists the mods of the active game.
func (s *Service) Mods() ([]domain.ModItem, error) {
	h, err := s.Game()
	if err != nil {
		return nil, err
	}
	return h.GetMods(), nil
}

// ResolveMod returns the mod called name, or the base game when name is empty.
func (s *Service) ResolveMod(name string) (domain.ModItem, error) {
	h, err := s.Game()
	if err != nil {
		return domain.ModItem{}, err
	}
	if name == "" {
		return domain.ModItem{
			Name:     h.ModName(h.DefaultModPath()),
			Path:     h.DefaultModPath(),
			Official: true,
		}, nil
	}
	m, err := h.FindMod(name)
	if err != nil {
		return domain.ModItem{}, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}

// Maps lists the maps of a mod of the active game.
func (s *Service) Maps(mod string) ([]domain.MapItem, error) {
	h, err := s.Game()
	if err != nil {
		return nil, err
	}
	m, err := s.ResolveMod(mod)
	if err != nil {
		return nil, err
	}
	return h.GetMaps(m.Path), nil
}

// Demos lists the demos of a mod of the active game. Maps of the base game
// and of the chosen official variant count as known.
func (s *Service) Demos(mod string) ([]domain.DemoItem, error) {
	h, err := s.Game()
	if err != nil {
		return nil, err
	}
	m, err := s.ResolveMod(mod)
	if err != nil {
		return nil, err
	}
	h.UpdateDefaultMapNames(s.variantPath(h, m))
	return h.GetDemos(m.Path), nil
}

// variantPath returns the official variant whose maps are playable while m
// is the current mod: m itself when official, else the saved game selection.
func (s *Service) variantPath(h *game.Handler, m domain.ModItem) string {
	if m.Official {
		return m.Path
	}
	sel, err := s.db.GetSelections(h.GamePath())
	if err != nil {
		s.log.Warn("reading selections", "error", err)
		return h.DefaultModPath()
	}
	if folder := sel[domain.ItemGame]; folder != "" {
		if v, err := h.FindMod(folder); err == nil && v.Official {
			return v.Path
		}
	}
	return h.DefaultModPath()
}

// Engines lists the engine executables of the active game.
func (s *Service) Engines() ([]domain.EngineItem, error) {
	h, err := s.Game()
	if err != nil {
		return nil, err
	}
	return h.GetEngines(), nil
}

// Random picks a random skill, class or map. Maps are picked from mod.
func (s *Service) Random(kind domain.ItemType, mod string) (string, error) {
	h, err := s.Game()
	if err != nil {
		return "", err
	}
	switch kind {
	case domain.ItemSkill, domain.ItemClass:
	case domain.ItemMap:
		if _, err := s.Maps(mod); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("random %s: %w", kind, domain.ErrUnknownItemType)
	}
	return h.RandomItem(kind), nil
}

// Select remembers a launch parameter for the active game. An empty value
// forgets it.
func (s *Service) Select(kind domain.ItemType, value string) error {
	h, err := s.Game()
	if err != nil {
		return err
	}
	if value == "" {
		return s.db.ClearSelection(h.GamePath(), kind)
	}

	switch kind {
	case domain.ItemEngine:
		value, err = s.findEngine(h, value)
	case domain.ItemGame:
		g, ok := h.BaseGame(value)
		if !ok {
			err = fmt.Errorf("%s: not an official variant of %s: %w", value, h.Title(), domain.ErrModNotFound)
		}
		value = g.Folder
	case domain.ItemMod:
		var m domain.ModItem
		m, err = s.ResolveMod(value)
		value = m.Name
	case domain.ItemSkill:
		value, err = matchOption(h.Skills(), value)
	case domain.ItemClass:
		value, err = matchOption(h.Classes(), value)
	case domain.ItemMap, domain.ItemDemo:
	default:
		err = fmt.Errorf("selecting %s: %w", kind, domain.ErrUnknownItemType)
	}
	if err != nil {
		return err
	}
	return s.db.SaveSelection(h.GamePath(), kind, value)
}

// Selections returns the remembered launch parameters of the active game.
func (s *Service) Selections() (map[domain.ItemType]string, error) {
	h, err := s.Game()
	if err != nil {
		return nil, err
	}
	return s.db.GetSelections(h.GamePath())
}

// ClearSelections forgets every launch parameter of the active game.
func (s *Service) ClearSelections() error {
	h, err := s.Game()
	if err != nil {
		return err
	}
	return s.db.ClearSelections(h.GamePath())
}

// CommandLine builds the launch command line from the saved selections,
// with overrides taking precedence. Random selections are resolved here.
func (s *Service) CommandLine(overrides map[domain.ItemType]string) (string, error) {
	h, err := s.Game()
	if err != nil {
		return "", err
	}
	sel, err := s.db.GetSelections(h.GamePath())
	if err != nil {
		return "", err
	}
	for k, v := range overrides {
		sel[k] = v
	}

	opts := LaunchOptions{
		Engine:     sel[domain.ItemEngine],
		Width:      s.config.Width,
		Height:     s.config.Height,
		Fullscreen: s.config.Fullscreen,
		Game:       sel[domain.ItemGame],
		Mod:        sel[domain.ItemMod],
		Map:        sel[domain.ItemMap],
		Skill:      sel[domain.ItemSkill],
		Class:      sel[domain.ItemClass],
		Demo:       sel[domain.ItemDemo],
	}
	if opts.Engine != "" && !filepath.IsAbs(opts.Engine) {
		opts.Engine = filepath.Join(h.GamePath(), opts.Engine)
	}

	for _, r := range []struct {
		kind  domain.ItemType
		value *string
	}{
		{domain.ItemSkill, &opts.Skill},
		{domain.ItemClass, &opts.Class},
		{domain.ItemMap, &opts.Map},
	} {
		if !strings.EqualFold(*r.value, RandomValue) {
			continue
		}
		v, err := s.Random(r.kind, opts.Mod)
		if err != nil {
			return "", err
		}
		*r.value = v
	}

	return BuildCommandLine(h, opts), nil
}

// DetectSteamInstalls scans the Steam libraries for supported games and
// remembers them.
func (s *Service) DetectSteamInstalls() ([]steam.Install, error) {
	scanner, err := steam.NewScanner(s.configDir, s.registry, s.log)
	if err != nil {
		return nil, err
	}
	installs := scanner.Scan()
	for _, in := range installs {
		if err := s.db.SaveInstall(db.Install{Path: in.Path, GameTitle: in.GameTitle, Source: db.SourceSteam}); err != nil {
			return nil, err
		}
		s.log.Info("found steam install", "game", in.GameTitle, "path", in.Path)
	}
	return installs, nil
}

// Installs returns the remembered installations.
func (s *Service) Installs() ([]db.Install, error) {
	return s.db.GetInstalls()
}

// ForgetInstall removes a remembered installation and its selections.
func (s *Service) ForgetInstall(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	return s.db.DeleteInstall(abs)
}

func (s *Service) findEngine(h *game.Handler, name string) (string, error) {
	for _, e := range h.GetEngines() {
		if strings.EqualFold(e.Name, name) || strings.EqualFold(strings.TrimSuffix(e.Name, filepath.Ext(e.Name)), name) {
			return e.Name, nil
		}
	}
	return "", fmt.Errorf("%s: no such engine in %s", name, h.GamePath())
}

var errNoSuchOption = errors.New("no such option")

// matchOption accepts an option's label or launch value, or RandomValue.
func matchOption(opts []domain.Option, value string) (string, error) {
	if strings.EqualFold(value, RandomValue) {
		for _, o := range opts {
			if o.Random {
				return RandomValue, nil
			}
		}
	}
	var labels []string
	for _, o := range opts {
		if o.IsSynthetic() {
			continue
		}
		if o.Value == value || strings.EqualFold(o.Label, value) {
			return o.Value, nil
		}
		labels = append(labels, o.Label)
	}
	if len(labels) == 0 {
		return "", fmt.Errorf("%q: %w: this game has none", value, errNoSuchOption)
	}
	return "", fmt.Errorf("%q: %w, expected one of %s", value, errNoSuchOption, strings.Join(labels, ", "))
}
