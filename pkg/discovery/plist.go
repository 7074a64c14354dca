package discovery

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/beevik/etree"
)

// Info.plist keys read by ReadBundleVersion, in order of preference
var versionKeys = []string{"CFBundleShortVersionString", "CFBundleVersion"}

// InfoPlistPath returns the location of a bundle's Info.plist
func InfoPlistPath(bundlePath string) string {
	return filepath.Join(bundlePath, "Contents", "Info.plist")
}

// ReadBundleVersion returns the version string recorded in the bundle's
// Info.plist. Only XML property lists are supported.
func ReadBundleVersion(bundlePath string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(InfoPlistPath(bundlePath)); err != nil {
		return "", fmt.Errorf("failed to read Info.plist: %w", err)
	}
	return versionFromPlist(doc)
}

// ParseBundleVersion is ReadBundleVersion for an in-memory Info.plist
func ParseBundleVersion(data []byte) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return "", fmt.Errorf("failed to parse Info.plist: %w", err)
	}
	return versionFromPlist(doc)
}

func versionFromPlist(doc *etree.Document) (string, error) {
	dict := doc.FindElement("./plist/dict")
	if dict == nil {
		return "", errors.New("no top-level dict in Info.plist")
	}

	values := make(map[string]string)
	children := dict.ChildElements()
	for i := 0; i+1 < len(children); i++ {
		if children[i].Tag != "key" {
			continue
		}
		if next := children[i+1]; next.Tag == "string" {
			values[children[i].Text()] = next.Text()
		}
	}

	for _, key := range versionKeys {
		if v, ok := values[key]; ok && v != "" {
			return v, nil
		}
	}
	return "", errors.New("no version key in Info.plist")
}
