package tips

import (
	"bufio"
	"embed"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

//go:embed resources
var resourceFS embed.FS

const (
	resourceDir    = "resources"
	resourcePrefix = "tips_"
	resourceSuffix = ".txt"
)

// Provider holds the per-locale tip lists. It is built once at application
// start from the embedded resources and never mutated afterwards.
type Provider struct {
	defaultLocale string
	locales       []string
	tags          []language.Tag
	matcher       language.Matcher
	tips          map[string][]string
}

// New scans the embedded tip resources and returns a Provider that falls
// back to defaultLocale. It fails when no resource exists for the default
// locale, since the fallback path must always have something to return.
func New(defaultLocale string) (*Provider, error) {
	entries, err := resourceFS.ReadDir(resourceDir)
	if err != nil {
		return nil, fmt.Errorf("reading tip resources: %w", err)
	}

	byLocale := make(map[string][]string)
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, resourcePrefix) || !strings.HasSuffix(name, resourceSuffix) {
			continue
		}
		locale := strings.TrimSuffix(strings.TrimPrefix(name, resourcePrefix), resourceSuffix)
		list, err := readTipFile(resourceDir + "/" + name)
		if err != nil {
			return nil, fmt.Errorf("reading tips for locale %q: %w", locale, err)
		}
		byLocale[locale] = list
	}

	if _, ok := byLocale[defaultLocale]; !ok {
		return nil, fmt.Errorf("no tip resource for default locale %q", defaultLocale)
	}

	locales := make([]string, 0, len(byLocale))
	for locale := range byLocale {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	tags := make([]language.Tag, len(locales))
	for i, locale := range locales {
		tags[i] = language.Make(locale)
	}

	return &Provider{
		defaultLocale: defaultLocale,
		locales:       locales,
		tags:          tags,
		matcher:       language.NewMatcher(tags),
		tips:          byLocale,
	}, nil
}

// Locales returns the locale codes with an embedded tip resource.
func (p *Provider) Locales() []string {
	return append([]string{}, p.locales...)
}

// DefaultLocale returns the fallback locale code.
func (p *Provider) DefaultLocale() string {
	return p.defaultLocale
}

// Tips returns the ordered tip list for the locale. Region variants match
// their base language ("ar-EG" resolves to the "ar" resource); anything
// unmatched falls back to the default locale. The returned slice is a copy.
func (p *Provider) Tips(locale string) []string {
	if list, ok := p.tips[locale]; ok {
		return append([]string{}, list...)
	}

	if tag, err := language.Parse(locale); err == nil {
		if _, index, conf := p.matcher.Match(tag); conf > language.No {
			return append([]string{}, p.tips[p.locales[index]]...)
		}
	}

	return append([]string{}, p.tips[p.defaultLocale]...)
}

// readTipFile parses one newline-delimited resource. Blank lines and
// '#' comment lines are skipped; everything else is a tip, in file order.
func readTipFile(path string) ([]string, error) {
	f, err := resourceFS.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var list []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
