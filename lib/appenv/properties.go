package appenv

import (
	"bufio"
	"os"
	"sort"
	"strings"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/rebelcraft/appenv/lib/util"
)

// Properties is a flat string-to-string property set as stored in a tier's
// properties file. Ordering is not significant.
type Properties map[string]string

// Clone returns an independent copy of p.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// loadPropertiesFile reads a properties file into memory. A missing file
// is not an error: the first run of an app has no properties yet, so an
// empty set is returned. Lines are `key=value`; blank lines and lines
// starting with '#' or '!' are skipped.
func loadPropertiesFile(path string) (Properties, error) {
	props := make(Properties)
	if !util.CheckFileExists(path) {
		log.WithField("file", path).Debug("Properties file does not exist, returning empty set")
		return props, nil
	}

	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).Error("Failed to open properties file")
		return nil, oops.Code(CodePropertyReadFailed).Wrapf(err, "failed to load properties from %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
			continue
		}
		idx := strings.Index(line, "=")
		if idx < 0 {
			return nil, oops.Code(CodePropertyReadFailed).
				Errorf("malformed property at %s:%d: no '=' separator", path, lineNo)
		}
		key := strings.TrimSpace(line[:idx])
		value := line[idx+1:]
		props[key] = value
	}
	if err := scanner.Err(); err != nil {
		log.WithError(err).Error("Failed to read properties file")
		return nil, oops.Code(CodePropertyReadFailed).Wrapf(err, "failed to load properties from %s", path)
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(props),
	}).Debug("Loaded properties file")
	return props, nil
}

// savePropertiesFile serializes props to path, overwriting any existing
// file. The first line is a provenance header naming the owning app. Keys
// are written sorted so repeated saves of the same set produce identical
// files.
func savePropertiesFile(path, appName string, props Properties) error {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(appName)
	sb.WriteString(" properties\n")
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(props[k])
		sb.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		log.WithError(err).Error("Failed to write properties file")
		return oops.Code(CodePropertyWriteFailed).Wrapf(err, "failed to save properties to %s", path)
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(props),
	}).Debug("Saved properties file")
	return nil
}
