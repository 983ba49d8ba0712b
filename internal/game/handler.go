package game

import (
	"io"
	"math/rand/v2"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"qlaunch/internal/domain"
	"qlaunch/internal/reader"

	"github.com/charmbracelet/log"
)

// LauncherName is the launcher's own executable name, never listed as an engine.
const LauncherName = "qlaunch"

// Handler is the active game: a Profile set up against an installation path.
// It is safe for concurrent use.
type Handler struct {
	profile  Profile
	def      Definition
	gamePath string
	modPath  string // Absolute default content folder

	backends  []reader.Backend
	baseGames map[string]domain.GameItem
	demoExts  map[string]bool
	skills    []domain.Option
	classes   []domain.Option

	defaultMaps domain.MapList

	mu              sync.RWMutex
	mapNames        domain.NameSet // Maps of the mod last listed by GetMaps
	defaultMapNames domain.NameSet // Maps playable from any mod folder

	log   *log.Logger
	randn func(n int) int
}

// HandlerOption configures a Handler during setup.
type HandlerOption func(*Handler)

// WithLogger sets the logger used for scan diagnostics.
func WithLogger(l *log.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithBackends replaces the folder, PAK and PK3 backends.
func WithBackends(b ...reader.Backend) HandlerOption {
	return func(h *Handler) {
		h.backends = b
	}
}

// WithRand sets the source of random indexes; randn(n) must return a value in [0, n).
func WithRand(randn func(n int) int) HandlerOption {
	return func(h *Handler) {
		if randn != nil {
			h.randn = randn
		}
	}
}

// newHandler runs setup. The order matters: later steps read what earlier ones set.
func newHandler(p Profile, gamePath string, opts ...HandlerOption) *Handler {
	h := &Handler{
		profile:         p,
		def:             p.Definition(),
		gamePath:        filepath.Clean(gamePath),
		log:             log.New(io.Discard),
		randn:           rand.IntN,
		baseGames:       make(map[string]domain.GameItem),
		demoExts:        make(map[string]bool),
		mapNames:        domain.NameSet{},
		defaultMapNames: domain.NameSet{},
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.backends == nil {
		h.backends = reader.Backends(h.log)
	}

	// Default content path and ignored prefix come first.
	if p, ok := findPath(h.gamePath, h.def.DefaultModPath); ok {
		h.modPath = p
	} else {
		h.modPath = filepath.Join(h.gamePath, h.def.DefaultModPath)
	}

	for _, ext := range h.def.DemoExtensions {
		h.demoExts[strings.ToLower(ext)] = true
	}

	for _, g := range h.def.BaseGames {
		h.baseGames[domain.Key(g.Folder)] = g
	}

	h.skills = withSyntheticOptions(h.def.Skills)
	h.classes = withSyntheticOptions(h.def.Classes)

	// Base game maps need the backends, so they come last.
	h.defaultMaps = domain.MapList{}
	if isDir(h.modPath) {
		scan := h.scanner(nil, "")
		for _, b := range h.backends {
			b.GetMaps(h.modPath, h.defaultMaps, scan, h.mapInfo())
		}
	}
	h.defaultMapNames = h.defaultMaps.Names()

	h.log.Info("selected game", "game", p.Title(), "path", h.gamePath, "base_maps", len(h.defaultMaps))
	return h
}

// withSyntheticOptions prepends Default to a non-empty list, then Random
// when there is more than one real option to pick from.
func withSyntheticOptions(opts []domain.Option) []domain.Option {
	if len(opts) == 0 {
		return nil
	}
	out := make([]domain.Option, 0, len(opts)+2)
	out = append(out, domain.DefaultOption)
	if len(opts) > 1 {
		out = append(out, domain.RandomOption)
	}
	return append(out, opts...)
}

// mapInfo wraps the game's map title reader with its title hook.
func (h *Handler) mapInfo() reader.MapInfoFunc {
	if h.def.MapInfo == nil {
		return nil
	}
	return func(name string, r io.ReadSeeker) (string, error) {
		title, err := h.def.MapInfo(name, r)
		if err != nil {
			return "", err
		}
		return h.profile.CheckMapTitle(title), nil
	}
}

// Title returns the game's display name.
func (h *Handler) Title() string { return h.profile.Title() }

// GamePath returns the installation root.
func (h *Handler) GamePath() string { return h.gamePath }

// DefaultModPath returns the absolute base content folder.
func (h *Handler) DefaultModPath() string { return h.modPath }

// IgnoredMapPrefix returns the prefix of non-playable map names.
func (h *Handler) IgnoredMapPrefix() string { return h.def.IgnoredMapPrefix }

// DemosFolder returns the demo folder relative to a mod folder.
func (h *Handler) DemosFolder() string { return h.def.DemosFolder }

// ModMarker returns the file that marks a folder as a mod.
func (h *Handler) ModMarker() string { return h.def.ModMarker }

// SupportedDemoExtensions returns the demo extensions, sorted.
func (h *Handler) SupportedDemoExtensions() []string {
	out := make([]string, 0, len(h.demoExts))
	for ext := range h.demoExts {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// BaseGames returns the official content variants in definition order.
func (h *Handler) BaseGames() []domain.GameItem {
	return append([]domain.GameItem(nil), h.def.BaseGames...)
}

// BaseGame returns the official variant stored in folder, ignoring case.
func (h *Handler) BaseGame(folder string) (domain.GameItem, bool) {
	g, ok := h.baseGames[domain.Key(filepath.ToSlash(folder))]
	return g, ok
}

// Skills returns the skill options, starting with the synthetic entries.
func (h *Handler) Skills() []domain.Option {
	return append([]domain.Option(nil), h.skills...)
}

// Classes returns the player class options, starting with the synthetic entries.
func (h *Handler) Classes() []domain.Option {
	return append([]domain.Option(nil), h.classes...)
}

// LaunchParameters returns the command-line template for each parameter kind.
func (h *Handler) LaunchParameters() map[domain.ItemType]string {
	out := make(map[domain.ItemType]string, len(h.def.LaunchParams))
	for k, v := range h.def.LaunchParams {
		out[k] = v
	}
	return out
}

// FullScreenArg returns the fragment selecting fullscreen or windowed mode.
func (h *Handler) FullScreenArg(fullscreen bool) string {
	return h.def.FullscreenArgs[fullscreen]
}

// ModName returns modPath relative to the game path, e.g. "rogue".
func (h *Handler) ModName(modPath string) string {
	rel, err := filepath.Rel(h.gamePath, modPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(modPath)
	}
	return filepath.ToSlash(rel)
}

// collectMaps runs every backend against modPath into a fresh list.
func (h *Handler) collectMaps(modPath string, info reader.MapInfoFunc) domain.MapList {
	maps := domain.MapList{}
	scan := h.scanner(nil, "")
	for _, b := range h.backends {
		b.GetMaps(modPath, maps, scan, info)
	}
	return maps
}

// GetMaps returns the maps of a mod folder, sorted by storage kind and then
// by name. A mod without maps of its own lists the base game's maps.
func (h *Handler) GetMaps(modPath string) []domain.MapItem {
	if !isDir(modPath) {
		return []domain.MapItem{}
	}
	maps := h.collectMaps(modPath, h.mapInfo())

	names := maps.Names()
	h.mu.Lock()
	names.Union(h.defaultMapNames)
	h.mapNames = names
	h.mu.Unlock()

	if len(maps) == 0 {
		maps = h.defaultMaps
	}
	items := maps.Items()
	sortMaps(items)
	return items
}

// UpdateDefaultMapNames sets the maps a demo may reference from any mod:
// those of modPath plus the base game's. Call it whenever the current mod changes.
func (h *Handler) UpdateDefaultMapNames(modPath string) {
	names := domain.NameSet{}
	if isDir(modPath) {
		names = h.collectMaps(modPath, nil).Names()
	}
	names.Union(h.defaultMaps.Names())

	h.mu.Lock()
	h.defaultMapNames = names
	h.mu.Unlock()
}

// GetDemos returns the demos of a mod folder, read from the game's demo folder.
func (h *Handler) GetDemos(modPath string) []domain.DemoItem {
	return h.GetDemosIn(modPath, h.def.DemosFolder)
}

// GetDemosIn returns the demos found in demosFolder of a mod, deduplicated
// across backends and sorted like maps. Demos that fail validation are
// listed with a warning instead of a title.
func (h *Handler) GetDemosIn(modPath, demosFolder string) []domain.DemoItem {
	if !isDir(modPath) {
		return []domain.DemoItem{}
	}

	known := h.collectMaps(modPath, nil).Names()
	h.mu.RLock()
	known.Union(h.defaultMapNames)
	h.mu.RUnlock()
	scan := h.scanner(known, h.ModName(modPath))

	// Backends read disjoint files; results are merged in backend order.
	results := make([][]domain.DemoItem, len(h.backends))
	var wg sync.WaitGroup
	for i, b := range h.backends {
		wg.Add(1)
		go func(i int, b reader.Backend) {
			defer wg.Done()
			results[i] = b.GetDemos(modPath, demosFolder, scan)
		}(i, b)
	}
	wg.Wait()

	demos := []domain.DemoItem{}
	seen := make(map[string]bool)
	for _, batch := range results {
		for _, d := range batch {
			key := d.DedupKey()
			if seen[key] {
				continue
			}
			seen[key] = true
			demos = append(demos, d)
		}
	}
	sortDemos(demos)
	return demos
}

func sortMaps(items []domain.MapItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Kind != items[j].Kind {
			return items[i].Kind < items[j].Kind
		}
		return domain.CompareNatural(items[i].Name, items[j].Name) < 0
	})
}

func sortDemos(items []domain.DemoItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Kind != items[j].Kind {
			return items[i].Kind < items[j].Kind
		}
		return domain.CompareNatural(items[i].Path, items[j].Path) < 0
	})
}
