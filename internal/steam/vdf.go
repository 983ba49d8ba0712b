package steam

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// VDFMap is a parsed VDF key-value block (nested maps and string values).
type VDFMap map[string]interface{}

// Map returns the nested block named key, ignoring case as Steam does.
func (m VDFMap) Map(key string) (VDFMap, bool) {
	v, ok := m.lookup(key)
	if !ok {
		return nil, false
	}
	inner, ok := v.(VDFMap)
	return inner, ok
}

// String returns the string value named key, ignoring case.
func (m VDFMap) String(key string) string {
	v, _ := m.lookup(key)
	s, _ := v.(string)
	return s
}

func (m VDFMap) lookup(key string) (interface{}, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

// ParseVDF reads Valve Key-Value text from r and returns the root block.
func ParseVDF(r io.Reader) (VDFMap, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(scanVDFTokens)
	p := &vdfParser{}
	for scanner.Scan() {
		p.tokens = append(p.tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vdf: %w", err)
	}
	return p.block(true)
}

type vdfParser struct {
	tokens []string
	pos    int
}

func (p *vdfParser) next() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	t := p.tokens[p.pos]
	p.pos++
	return t, true
}

// block parses key-value pairs up to the closing brace, or to the end of
// input for the root block.
func (p *vdfParser) block(root bool) (VDFMap, error) {
	result := make(VDFMap)
	for {
		key, ok := p.next()
		if !ok {
			if root {
				return result, nil
			}
			return nil, fmt.Errorf("vdf: unclosed block")
		}
		if key == "}" {
			if root {
				return nil, fmt.Errorf("vdf: unexpected }")
			}
			return result, nil
		}
		value, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("vdf: unexpected end after key %q", key)
		}
		if value != "{" {
			result[key] = value
			continue
		}
		inner, err := p.block(false)
		if err != nil {
			return nil, err
		}
		result[key] = inner
	}
}

// scanVDFTokens splits on quoted strings, bare words and braces. Comments
// starting with // run to the end of the line.
func scanVDFTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for {
		for start < len(data) && unicode.IsSpace(rune(data[start])) {
			start++
		}
		if start+1 < len(data) && data[start] == '/' && data[start+1] == '/' {
			end := start
			for end < len(data) && data[end] != '\n' {
				end++
			}
			if end == len(data) && !atEOF {
				return 0, nil, nil
			}
			start = end
			continue
		}
		break
	}
	if start >= len(data) {
		if atEOF {
			return start, nil, nil
		}
		return 0, nil, nil
	}
	data = data[start:]

	switch data[0] {
	case '"':
		var sb strings.Builder
		for i := 1; i < len(data); i++ {
			switch {
			case data[i] == '\\' && i+1 < len(data):
				i++
				sb.WriteByte(data[i])
			case data[i] == '"':
				if sb.Len() == 0 {
					return start + i + 1, data[1:1], nil
				}
				return start + i + 1, []byte(sb.String()), nil
			default:
				sb.WriteByte(data[i])
			}
		}
		if atEOF {
			return 0, nil, fmt.Errorf("vdf: unclosed quote")
		}
		return 0, nil, nil
	case '{', '}':
		return start + 1, data[:1], nil
	}

	i := 0
	for i < len(data) && !unicode.IsSpace(rune(data[i])) && data[i] != '"' && data[i] != '{' && data[i] != '}' {
		i++
	}
	if i == len(data) && !atEOF {
		return 0, nil, nil
	}
	return start + i, data[:i], nil
}

// libraryPaths extracts library paths from a parsed libraryfolders.vdf root:
// libraryfolders -> "0", "1", ... -> path. Old files store the path directly
// as the value.
func libraryPaths(root VDFMap) []string {
	lf, ok := root.Map("libraryfolders")
	if !ok {
		return nil
	}
	var paths []string
	for i := 0; ; i++ {
		v, ok := lf[fmt.Sprint(i)]
		if !ok {
			break
		}
		switch e := v.(type) {
		case VDFMap:
			if p := e.String("path"); p != "" {
				paths = append(paths, p)
			}
		case string:
			if e != "" {
				paths = append(paths, e)
			}
		}
	}
	return paths
}

// AppManifest holds parsed fields from an appmanifest_*.acf file.
type AppManifest struct {
	AppID      string
	Name       string
	InstallDir string
}

// ParseAppManifest parses appmanifest_*.acf content.
func ParseAppManifest(r io.Reader) (AppManifest, error) {
	root, err := ParseVDF(r)
	if err != nil {
		return AppManifest{}, err
	}
	state, ok := root.Map("AppState")
	if !ok {
		return AppManifest{}, fmt.Errorf("vdf: missing AppState")
	}
	return AppManifest{
		AppID:      state.String("appid"),
		Name:       state.String("name"),
		InstallDir: state.String("installdir"),
	}, nil
}
