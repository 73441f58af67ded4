package library

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/vidcat/vidcat/filesystem"
	"github.com/vidcat/vidcat/log"
)

//go:embed videos.txt
var embedded []byte

// Default returns the library bundled with the binary.
func Default() *Library {
	return lo.Must(ParseText(embedded))
}

// Load reads a library file through the active filesystem. Files ending in
// .json are decoded as a JSON array, anything else uses the line format
// "Title | video_id | #tag1 , #tag2". An empty path yields the default library.
func Load(path string) (*Library, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read library: %w", err)
	}

	var l *Library
	if strings.EqualFold(filepath.Ext(path), ".json") {
		l, err = ParseJSON(data)
	} else {
		l, err = ParseText(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Infof("loaded %d videos from %s", l.Len(), path)
	return l, nil
}

// ParseText decodes the line format. Blank lines are skipped.
func ParseText(data []byte) (*Library, error) {
	var videos []*Video

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected \"title | id | tags\"", n)
		}

		v := &Video{
			Title: strings.TrimSpace(fields[0]),
			ID:    strings.TrimSpace(fields[1]),
		}
		if len(fields) > 2 {
			v.Tags = splitTags(fields[2])
		}
		videos = append(videos, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return New(videos...)
}

// ParseJSON decodes an array of videos.
func ParseJSON(data []byte) (*Library, error) {
	var videos []*Video
	if err := json.Unmarshal(data, &videos); err != nil {
		return nil, fmt.Errorf("decode library: %w", err)
	}

	for i, v := range videos {
		if v == nil {
			return nil, fmt.Errorf("entry %d is null", i)
		}
		v.Tags = lo.Filter(lo.Map(v.Tags, func(t string, _ int) string {
			return strings.TrimSpace(t)
		}), func(t string, _ int) bool {
			return t != ""
		})
	}

	return New(videos...)
}

func splitTags(field string) []string {
	var tags []string
	for _, tag := range strings.Split(field, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
