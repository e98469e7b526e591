package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownScene is returned by Build for an ID that is not in the catalogue
var ErrUnknownScene = errors.New("unknown scene")

const builtInGroup = "Built-in Scenes"

// SceneInfo describes a scene in the catalogue
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Width       int    `json:"width"`       // Default image width
	Height      int    `json:"height"`      // Default image height
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type entry struct {
	id          string
	description string
	group       string
	width       int
	height      int
	build       func(Config) (*Scene, error)
}

var catalogue = []entry{
	{"spheres", "Three spheres in a room walled by flattened spheres", builtInGroup, 100, 50, NewSpheresScene},
	{"plane", "Three spheres standing on an infinite plane", builtInGroup, 400, 300, NewPlaneScene},
	{"patterns", "Stripe, gradient, ring, checker and nested patterns under two lights", builtInGroup, 400, 300, NewPatternsScene},
	{"shadows", "A hand of stretched spheres casting a shadow puppet", builtInGroup, 400, 200, NewShadowsScene},
	{"default-world", "Two concentric spheres and one light", "Test Scenes", 11, 11, NewDefaultWorldScene},
}

// DefaultSceneID is the scene used when none is requested
const DefaultSceneID = "spheres"

// Build constructs the scene with the given ID
func Build(id string, cfg Config) (*Scene, error) {
	for _, e := range catalogue {
		if e.id == id {
			s, err := e.build(cfg)
			if err != nil {
				return nil, fmt.Errorf("building scene %q: %w", id, err)
			}
			return s, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", id, ErrUnknownScene)
}

// ListScenes returns the catalogue in its declared order
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(catalogue))
	for _, e := range catalogue {
		name := titleCase(e.id)
		scenes = append(scenes, SceneInfo{
			ID:          e.id,
			Name:        name,
			DisplayName: name,
			Description: e.description,
			Group:       e.group,
			Width:       e.width,
			Height:      e.height,
		})
	}
	return scenes
}

// ListAllScenes returns the catalogue grouped by category, built-in scenes first
func ListAllScenes() ScenesResponse {
	var response ScenesResponse

	groupMap := make(map[string][]SceneInfo)
	for _, s := range ListScenes() {
		groupMap[s.Group] = append(groupMap[s.Group], s)
	}

	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtInGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if scenes, exists := groupMap[builtInGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{Name: builtInGroup, Scenes: scenes})
	}
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}

	return response
}

// titleCase converts an ID-style string to title case
// e.g., "default-world" -> "Default World"
func titleCase(s string) string {
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return cases.Title(language.English).String(strings.Join(strings.Fields(s), " "))
}
