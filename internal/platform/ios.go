package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/natlink-labs/natlink/internal/assets"
	"github.com/natlink-labs/natlink/internal/project"
	"go.trai.ch/zerr"
	"howett.net/plist"
)

// IOSProject is the detected ios/ subproject of an app.
type IOSProject struct {
	// Dir is the ios/ directory.
	Dir string

	// Podfile is the CocoaPods Podfile where dependency pods are declared.
	Podfile string

	// InfoPlist is the app target's Info.plist, empty when none was found.
	// Font assets require it for UIAppFonts registration.
	InfoPlist string

	// ResourcesDir is the asset destination, next to the Info.plist.
	ResourcesDir string
}

// Root returns the ios/ directory.
func (p *IOSProject) Root() string { return p.Dir }

type iosPlatform struct{}

func (i *iosPlatform) Key() string         { return KeyIOS }
func (i *iosPlatform) DisplayName() string { return "iOS" }

// DetectProject locates ios/Podfile and the app target's Info.plist. Only
// the Podfile is required; Info.plist is needed later for font assets.
func (i *iosPlatform) DetectProject(appRoot string) (Project, bool) {
	dir := filepath.Join(appRoot, "ios")

	podfile := filepath.Join(dir, "Podfile")
	if _, err := os.Stat(podfile); err != nil {
		return nil, false
	}

	infoPlist := findInfoPlist(dir)
	resources := filepath.Join(dir, "Resources")
	if infoPlist != "" {
		resources = filepath.Join(filepath.Dir(infoPlist), "Resources")
	}

	return &IOSProject{
		Dir:          dir,
		Podfile:      podfile,
		InfoPlist:    infoPlist,
		ResourcesDir: resources,
	}, true
}

func (i *iosPlatform) Supports(dep *project.Dependency) bool {
	return dep.IOS != nil
}

// Link declares the dependency's pod in the Podfile's first target block.
func (i *iosPlatform) Link(prj Project, dep *project.Dependency) error {
	p, err := iosProject(prj)
	if err != nil {
		return err
	}

	lines, err := readLines(p.Podfile)
	if err != nil {
		return err
	}
	if hasPodEntry(lines, dep.IOS.PodName) {
		return nil
	}

	rel, err := relPosix(p.Dir, dep.RootDir)
	if err != nil {
		return err
	}

	entry := fmt.Sprintf("pod '%s', :path => '%s'", dep.IOS.PodName, rel)
	lines, ok := insertAfter(lines, isTargetLine, "  "+entry)
	if !ok {
		return zerr.With(zerr.Wrap(ErrNoTargetBlock, ""), "file", p.Podfile)
	}
	return writeLines(p.Podfile, lines)
}

// Unlink removes the pod declaration Link inserted.
func (i *iosPlatform) Unlink(prj Project, dep *project.Dependency) error {
	p, err := iosProject(prj)
	if err != nil {
		return err
	}

	lines, err := readLines(p.Podfile)
	if err != nil {
		return err
	}
	prefix := podEntryPrefix(dep.IOS.PodName)
	lines = removeLines(lines, func(line string) bool {
		return strings.HasPrefix(line, prefix)
	})
	return writeLines(p.Podfile, lines)
}

// IsLinked reports whether the Podfile declares the dependency's pod.
func (i *iosPlatform) IsLinked(prj Project, dep *project.Dependency) (bool, error) {
	p, err := iosProject(prj)
	if err != nil {
		return false, err
	}
	lines, err := readLines(p.Podfile)
	if err != nil {
		return false, err
	}
	return hasPodEntry(lines, dep.IOS.PodName), nil
}

// CopyAssets copies files into the app's Resources directory and registers
// fonts in Info.plist under UIAppFonts.
func (i *iosPlatform) CopyAssets(prj Project, assetPaths []string) error {
	p, err := iosProject(prj)
	if err != nil {
		return err
	}

	files, err := assets.Expand(assetPaths)
	if err != nil {
		return err
	}

	var fonts []string
	for _, file := range files {
		if err := assets.CopyFile(file, p.ResourcesDir); err != nil {
			return err
		}
		if assets.IsFont(file) {
			fonts = append(fonts, filepath.Base(file))
		}
	}
	return i.registerFonts(p, fonts)
}

// RemoveAssets deletes the copies CopyAssets made and deregisters fonts.
func (i *iosPlatform) RemoveAssets(prj Project, assetPaths []string) error {
	p, err := iosProject(prj)
	if err != nil {
		return err
	}

	files, err := assets.Expand(assetPaths)
	if err != nil {
		return err
	}

	var fonts []string
	for _, file := range files {
		if err := assets.Remove(file, p.ResourcesDir); err != nil {
			return err
		}
		if assets.IsFont(file) {
			fonts = append(fonts, filepath.Base(file))
		}
	}
	return i.deregisterFonts(p, fonts)
}

// registerFonts adds font file names to the UIAppFonts array, deduplicated.
func (i *iosPlatform) registerFonts(p *IOSProject, fonts []string) error {
	if len(fonts) == 0 {
		return nil
	}
	return i.editFonts(p, func(current []string) []string {
		for _, font := range fonts {
			if !containsString(current, font) {
				current = append(current, font)
			}
		}
		sort.Strings(current)
		return current
	})
}

// deregisterFonts removes font file names from the UIAppFonts array.
func (i *iosPlatform) deregisterFonts(p *IOSProject, fonts []string) error {
	if len(fonts) == 0 {
		return nil
	}
	return i.editFonts(p, func(current []string) []string {
		kept := current[:0]
		for _, font := range current {
			if !containsString(fonts, font) {
				kept = append(kept, font)
			}
		}
		return kept
	})
}

// editFonts rewrites the UIAppFonts array through edit, preserving the
// plist's original format (XML or binary).
func (i *iosPlatform) editFonts(p *IOSProject, edit func([]string) []string) error {
	if p.InfoPlist == "" {
		return zerr.With(zerr.Wrap(ErrNoInfoPlist, ""), "dir", p.Dir)
	}

	data, err := os.ReadFile(p.InfoPlist)
	if err != nil {
		return fmt.Errorf("reading %s: %w", p.InfoPlist, err)
	}

	var info map[string]interface{}
	format, err := plist.Unmarshal(data, &info)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", p.InfoPlist, err)
	}

	fonts := edit(appFonts(info))
	if len(fonts) == 0 {
		delete(info, "UIAppFonts")
	} else {
		info["UIAppFonts"] = fonts
	}

	out, err := plist.MarshalIndent(info, format, "\t")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", p.InfoPlist, err)
	}
	return writeFileAtomic(p.InfoPlist, out)
}

// appFonts extracts the UIAppFonts entries as strings.
func appFonts(info map[string]interface{}) []string {
	raw, ok := info["UIAppFonts"].([]interface{})
	if !ok {
		return nil
	}
	fonts := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			fonts = append(fonts, s)
		}
	}
	return fonts
}

// findInfoPlist returns the app target's Info.plist: the first match of
// ios/*/Info.plist outside Pods and build output.
func findInfoPlist(dir string) string {
	matches, err := filepath.Glob(filepath.Join(dir, "*", "Info.plist"))
	if err != nil {
		return ""
	}
	sort.Strings(matches)
	for _, match := range matches {
		parent := filepath.Base(filepath.Dir(match))
		if parent == "Pods" || parent == "build" {
			continue
		}
		return match
	}
	return ""
}

// isTargetLine matches the opening of a Podfile target block.
func isTargetLine(line string) bool {
	return strings.HasPrefix(line, "target ") && strings.HasSuffix(line, " do")
}

func podEntryPrefix(podName string) string {
	return fmt.Sprintf("pod '%s',", podName)
}

func hasPodEntry(lines []string, podName string) bool {
	prefix := podEntryPrefix(podName)
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			return true
		}
	}
	return false
}

func containsString(list []string, val string) bool {
	for _, s := range list {
		if s == val {
			return true
		}
	}
	return false
}

func iosProject(prj Project) (*IOSProject, error) {
	p, ok := prj.(*IOSProject)
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrProjectMismatch, ""), "platform", KeyIOS)
	}
	return p, nil
}
