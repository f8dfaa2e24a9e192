package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// ParseText parses the plain text level format:
//
//	; id: lvl06
//	; name: Warehouse
//	_______
//	_R___G_
//	---
//	WWWWWWW
//	W_r_g_W
//
// Lines starting with ';' are "key: value" headers; id and name are lifted
// out, other keys go to Metadata. The ground layer comes first, then a line
// holding only "---", then the content layer.
func ParseText(data []byte) (Level, error) {
	var (
		level     Level
		ground    []string
		content   []string
		separated bool
	)

	sc := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), " \t\r")
		switch {
		case strings.HasPrefix(line, ";"):
			key, value, ok := strings.Cut(strings.TrimPrefix(line, ";"), ":")
			if !ok {
				continue
			}
			level.setHeader(strings.TrimSpace(key), strings.TrimSpace(value))
		case line == "---":
			if separated {
				return Level{}, fmt.Errorf("line %d: second layer separator", n)
			}
			separated = true
		case line == "":
			continue
		case separated:
			content = append(content, line)
		default:
			ground = append(ground, line)
		}
	}
	if err := sc.Err(); err != nil {
		return Level{}, fmt.Errorf("reading level text: %w", err)
	}

	level.Ground = strings.Join(ground, "\n")
	level.Content = strings.Join(content, "\n")
	if err := level.check(); err != nil {
		return Level{}, err
	}
	return level, nil
}

func (l *Level) setHeader(key, value string) {
	switch strings.ToLower(key) {
	case "id":
		l.ID = value
	case "name":
		l.Name = value
	default:
		if l.Metadata == nil {
			l.Metadata = make(map[string]string)
		}
		l.Metadata[key] = value
	}
}
