package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const builtinGroup = "Built-in Scenes"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by Load
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the scene file (file type only)
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

var builtinScenes = map[string]func() *Scene{
	"default":              NewDefaultScene,
	"primitives":           func() *Scene { return NewPrimitivesScene(false) },
	"primitives-proximity": func() *Scene { return NewPrimitivesScene(true) },
	"sphere-row":           NewSphereRowScene,
}

// BuiltinScenes returns metadata for the scenes compiled into the binary
func BuiltinScenes() []SceneInfo {
	return []SceneInfo{
		{
			ID:          "default",
			Name:        "Default Scene",
			DisplayName: "Default Scene",
			Description: "A sphere resting on a large floor sphere under a sky gradient",
			Group:       builtinGroup,
			Type:        "builtin",
		},
		{
			ID:          "primitives",
			Name:        "Primitives",
			DisplayName: "Primitives",
			Description: "Sphere, floor, triangle, line and line segment",
			Group:       builtinGroup,
			Type:        "builtin",
		},
		{
			ID:          "primitives-proximity",
			Name:        "Primitives",
			DisplayName: "Primitives - Visible Lines",
			Description: "Primitives scene with proximity hits enabled for lines",
			Group:       builtinGroup,
			Type:        "builtin",
		},
		{
			ID:          "sphere-row",
			Name:        "Sphere Row",
			DisplayName: "Sphere Row",
			Description: "Five spheres receding into the distance",
			Group:       builtinGroup,
			Type:        "builtin",
		},
	}
}

// FindScenesDir returns the first existing scenes directory, or "" if there is none
func FindScenesDir() string {
	for _, path := range []string{"scenes", "../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListSceneFiles scans dir for *.json scene files and returns their metadata
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Skip broken files but keep listing the rest
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata reads the descriptive fields of a scene file
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:          "file:" + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       "Scene Files",
		Type:        "file",
		FilePath:    filePath,
	}

	f, err := ReadFile(filePath)
	if err != nil {
		return info, err
	}

	if f.Name != "" {
		info.Name = f.Name
		info.DisplayName = f.Name
	}
	if f.Group != "" {
		info.Group = f.Group
	}
	info.Description = f.Description

	return info, nil
}

// ListAllScenes returns both built-in and file scenes, grouped by category
func ListAllScenes(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListSceneFiles(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(BuiltinScenes(), fileScenes...)

	groupMap := make(map[string][]SceneInfo)
	for _, info := range allScenes {
		groupMap[info.Group] = append(groupMap[info.Group], info)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	response.Groups = append(response.Groups, SceneGroup{
		Name:   builtinGroup,
		Scenes: groupMap[builtinGroup],
	})
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// Load resolves a built-in scene name, a path to a .json scene file, or a
// "file:<name>" ID (or bare name) from the scenes directory.
func Load(nameOrPath string) (*Scene, error) {
	return LoadFrom(FindScenesDir(), nameOrPath)
}

// LoadFrom is Load with an explicit scenes directory
func LoadFrom(dir, nameOrPath string) (*Scene, error) {
	if nameOrPath == "" {
		return nil, fmt.Errorf("empty scene name")
	}

	if build, ok := builtinScenes[nameOrPath]; ok {
		return build(), nil
	}

	if strings.HasSuffix(nameOrPath, ".json") {
		return LoadFile(nameOrPath)
	}

	name, isFileID := strings.CutPrefix(nameOrPath, "file:")
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return nil, fmt.Errorf("invalid scene name %q", nameOrPath)
	}

	if dir != "" {
		path := filepath.Join(dir, name+".json")
		if _, err := os.Stat(path); err == nil || isFileID {
			return LoadFile(path)
		}
	} else if isFileID {
		return nil, fmt.Errorf("scene %q: no scenes directory found", nameOrPath)
	}

	return nil, fmt.Errorf("unknown scene %q", nameOrPath)
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
