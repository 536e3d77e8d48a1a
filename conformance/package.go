// Package conformance checks the structure tables of package r4 against
// official StructureDefinitions loaded from a FHIR NPM package.
package conformance

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/buger/jsonparser"
	json "github.com/goccy/go-json"
	fhir "github.com/gofhir/fhir/r4"

	"github.com/gofhir/models/pkg/logger"
)

// CoreBase is the canonical URL prefix of core StructureDefinitions.
const CoreBase = "http://hl7.org/fhir/StructureDefinition/"

// CorePackage is the package the r4 structures are modeled on.
var CorePackage = PackageRef{Name: "hl7.fhir.r4.core", Version: "4.0.1"}

// DefaultPackagePath returns the default FHIR package cache path.
func DefaultPackagePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fhir", "packages")
}

// PackageRef names a FHIR package.
type PackageRef struct {
	Name    string
	Version string
}

// String returns the package spec in "name#version" format.
func (p PackageRef) String() string {
	return p.Name + "#" + p.Version
}

// ParsePackageSpec parses "name#version" into separate components.
func ParsePackageSpec(spec string) PackageRef {
	name, version, _ := strings.Cut(spec, "#")
	return PackageRef{Name: name, Version: version}
}

type manifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	FHIRVersion string `json:"fhirVersion,omitempty"`
}

// Package holds the StructureDefinitions of a loaded package.
type Package struct {
	Name        string
	Version     string
	FHIRVersion string

	// Source is the directory, archive or file the package was read from
	Source string

	// Rejected lists the package files that could not be read as FHIR
	// resources, e.g. malformed StructureDefinitions.
	Rejected []string

	definitions map[string]*fhir.StructureDefinition
}

func newPackage(source string) *Package {
	return &Package{Source: source, definitions: make(map[string]*fhir.StructureDefinition)}
}

// Definition returns the StructureDefinition with the given canonical URL.
func (p *Package) Definition(url string) (*fhir.StructureDefinition, bool) {
	sd, ok := p.definitions[url]
	return sd, ok
}

// Definitions returns all StructureDefinitions sorted by URL.
func (p *Package) Definitions() []*fhir.StructureDefinition {
	urls := make([]string, 0, len(p.definitions))
	for url := range p.definitions {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	out := make([]*fhir.StructureDefinition, len(urls))
	for i, url := range urls {
		out[i] = p.definitions[url]
	}
	return out
}

// Len returns the number of StructureDefinitions.
func (p *Package) Len() int {
	return len(p.definitions)
}

// Add parses a StructureDefinition or a Bundle of them and adds them to the
// package. Other resource types are ignored. It returns the number added.
func (p *Package) Add(data []byte) (int, error) {
	rt, err := jsonparser.GetString(data, "resourceType")
	if err != nil {
		return 0, fmt.Errorf("read resourceType: %w", err)
	}

	switch rt {
	case "StructureDefinition":
		var sd fhir.StructureDefinition
		if err := json.Unmarshal(data, &sd); err != nil {
			return 0, fmt.Errorf("parse StructureDefinition: %w", err)
		}
		if sd.Url == nil {
			return 0, errors.New("StructureDefinition without url")
		}
		p.definitions[*sd.Url] = &sd
		return 1, nil
	case "Bundle":
		count := 0
		_, err := jsonparser.ArrayEach(data, func(value []byte, _ jsonparser.ValueType, _ int, _ error) {
			resource, _, _, err := jsonparser.Get(value, "resource")
			if err != nil {
				return
			}
			if n, err := p.Add(resource); err == nil {
				count += n
			}
		}, "entry")
		if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return count, fmt.Errorf("read bundle entries: %w", err)
		}
		return count, nil
	}
	return 0, nil
}

func (p *Package) setManifest(data []byte) error {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("parse package manifest: %w", err)
	}
	p.Name, p.Version, p.FHIRVersion = m.Name, m.Version, m.FHIRVersion
	return nil
}

// LoadFile loads a single StructureDefinition or Bundle file.
func LoadFile(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	pkg := newPackage(path)
	if _, err := pkg.Add(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pkg, nil
}

// addFile adds one package file. Files that are valid resources but not
// StructureDefinitions are ignored by Add; unreadable ones are recorded.
func (p *Package) addFile(name string, data []byte) {
	if _, err := p.Add(data); err != nil {
		p.Rejected = append(p.Rejected, name)
		logger.Debug("conformance: skipping %s in %s: %v", name, p.Source, err)
	}
}

// LoadDir loads every JSON file of an unpacked package directory. The
// directory is either the package root or its "package" subdirectory; a
// package.json manifest is read when present.
func LoadDir(dir string) (*Package, error) {
	if sub := filepath.Join(dir, "package"); isDir(sub) {
		dir = sub
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read package directory: %w", err)
	}

	pkg := newPackage(dir)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || name == ".index.json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if name == "package.json" {
			if err := pkg.setManifest(data); err != nil {
				return nil, err
			}
			continue
		}
		pkg.addFile(name, data)
	}
	return pkg, nil
}

// LoadCached loads a package from the NPM cache at basePath, laid out as
// "<basePath>/<name>#<version>/package". An empty basePath uses
// DefaultPackagePath.
func LoadCached(basePath string, ref PackageRef) (*Package, error) {
	if basePath == "" {
		basePath = DefaultPackagePath()
	}
	dir := filepath.Join(basePath, ref.String())
	if !isDir(dir) {
		return nil, fmt.Errorf("package %s not found at %s", ref, dir)
	}
	return LoadDir(dir)
}

// LoadTgz loads a package from a .tgz archive.
func LoadTgz(path string) (*Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open package archive: %w", err)
	}
	defer f.Close()
	return LoadTgzReader(f, path)
}

// LoadTgzReader loads a package from a gzipped tar stream.
func LoadTgzReader(r io.Reader, source string) (*Package, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	defer gz.Close()

	pkg := newPackage(source)
	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar entry: %w", err)
		}
		if header.Typeflag == tar.TypeDir {
			continue
		}

		name := strings.TrimPrefix(header.Name, "package/")
		if !strings.HasSuffix(name, ".json") || name == ".index.json" {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", header.Name, err)
		}
		if name == "package.json" {
			if err := pkg.setManifest(data); err != nil {
				return nil, err
			}
			continue
		}
		pkg.addFile(name, data)
	}
	return pkg, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
