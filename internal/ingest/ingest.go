// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest reads the per-course raw record files handed over by the
// course-matching stage. Each file holds one matched course and its
// per-format lists of raw reading records, in YAML form.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/meshlib/reserves-engine/internal/mapper"
	"github.com/meshlib/reserves-engine/pkg/types"
)

// CourseFile is the on-disk handover format: course identity plus raw
// records grouped by source-table name.
type CourseFile struct {
	CourseCode      string                                `yaml:"coursecode"`
	SectionID       string                                `yaml:"section_id"`
	CourseTitle     string                                `yaml:"course_title"`
	ReadingListName string                                `yaml:"reading_list_name,omitempty"`
	Records         map[string][]types.RawReadingRecord   `yaml:"records"`
}

// Context returns the course identity for the mapper.
func (f CourseFile) Context() mapper.CourseContext {
	return mapper.CourseContext{
		CourseCode:      f.CourseCode,
		SectionID:       f.SectionID,
		CourseTitle:     f.CourseTitle,
		ReadingListName: f.ReadingListName,
	}
}

// CourseRecords converts the format-name keyed record lists into the
// mapper's typed form. Unrecognized format names are skipped and
// returned so the caller can warn; a bad key never aborts the course.
func (f CourseFile) CourseRecords() (mapper.CourseRecords, []string) {
	records := mapper.CourseRecords{}
	var skipped []string
	for name, rows := range f.Records {
		format := types.ParseFormat(name)
		if format == types.FormatUnknown {
			skipped = append(skipped, name)
			continue
		}
		records[format] = append(records[format], rows...)
	}
	sort.Strings(skipped)
	return records, skipped
}

// ReadCourseFile loads a single course handover file.
func ReadCourseFile(path string) (CourseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CourseFile{}, fmt.Errorf("reading course file: %w", err)
	}
	var f CourseFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return CourseFile{}, fmt.Errorf("parsing course file %s: %w", filepath.Base(path), err)
	}
	if f.CourseCode == "" {
		return CourseFile{}, fmt.Errorf("course file %s has no coursecode", filepath.Base(path))
	}
	return f, nil
}

// ReadCoursesDir loads every .yaml course file in dir, sorted by file
// name so batch output is deterministic.
func ReadCoursesDir(dir string) ([]CourseFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading courses directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	files := make([]CourseFile, 0, len(paths))
	for _, path := range paths {
		f, err := ReadCourseFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
