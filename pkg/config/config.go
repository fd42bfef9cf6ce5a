package config

import (
	"errors"
	"fmt"
	"path"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Version    int          `json:"version,omitempty" jsonschema:"enum=1"`
	Files      []*File      `json:"files,omitempty" jsonschema:"description=Target workflow files. If files are passed via positional command line arguments, this is ignored"`
	Event      string       `json:"event,omitempty" jsonschema:"description=Default trigger event used by wfrun run"`
	FailUnder  float64      `json:"fail_under,omitempty" yaml:"fail_under" jsonschema:"description=Default coverage threshold used by wfrun gate"`
	IgnoreJobs []*IgnoreJob `json:"ignore_jobs,omitempty" yaml:"ignore_jobs" jsonschema:"description=Jobs that wfrun skips"`
}

type File struct {
	Pattern string `json:"pattern" jsonschema:"description=A regular expression of target file paths"`
	pattern *regexp.Regexp
}

func (f *File) Init() error {
	if f.Pattern == "" {
		return errors.New("pattern is required")
	}
	p, err := regexp.Compile(f.Pattern)
	if err != nil {
		return fmt.Errorf("compile pattern as a regular expression: %w", err)
	}
	f.pattern = p
	return nil
}

// Match reports whether the file path matches the pattern.
func (f *File) Match(p string) bool {
	return f.pattern != nil && f.pattern.MatchString(p)
}

const (
	formatFixedString = "fixed_string"
	formatGlob        = "glob"
	formatRegexp      = "regexp"
)

// IgnoreJob selects jobs that the runner and the validator skip.
type IgnoreJob struct {
	Name       string `json:"name"`
	NameFormat string `json:"name_format" yaml:"name_format" jsonschema:"enum=fixed_string,enum=glob,enum=regexp"`
	nameRegexp *regexp.Regexp
}

func (ij *IgnoreJob) Init() error {
	if ij.Name == "" {
		return errors.New("name is required")
	}
	if ij.NameFormat == "" {
		ij.NameFormat = formatFixedString
	}
	switch ij.NameFormat {
	case formatFixedString:
		return nil
	case formatGlob:
		if _, err := path.Match(ij.Name, "a"); err != nil {
			return fmt.Errorf("parse name as a glob: %w", err)
		}
		return nil
	case formatRegexp:
		r, err := regexp.Compile(ij.Name)
		if err != nil {
			return fmt.Errorf("compile name as a regular expression: %w", err)
		}
		ij.nameRegexp = r
		return nil
	default:
		return errors.New("name_format must be fixed_string, glob, or regexp")
	}
}

func (ij *IgnoreJob) Match(name string) (bool, error) {
	switch ij.NameFormat {
	case formatFixedString, "":
		return ij.Name == name, nil
	case formatGlob:
		matched, err := path.Match(ij.Name, name)
		if err != nil {
			return false, fmt.Errorf("match name as a glob: %w", err)
		}
		return matched, nil
	case formatRegexp:
		return ij.nameRegexp.MatchString(name), nil
	default:
		return false, errors.New("unexpected name_format: " + ij.NameFormat)
	}
}

// Ignored reports whether any ignore_jobs entry matches the job name.
func (c *Config) Ignored(jobName string) (bool, error) {
	for _, ij := range c.IgnoreJobs {
		matched, err := ij.Match(jobName)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, p := range []string{".wfrun.yaml", ".github/wfrun.yaml", ".wfrun.yml", ".github/wfrun.yml"} {
		f, err := afero.Exists(fs, p)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", p, err)
		}
		if f {
			return p, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	for _, file := range cfg.Files {
		if err := file.Init(); err != nil {
			return fmt.Errorf("initialize a file pattern: %w", err)
		}
	}
	for _, ij := range cfg.IgnoreJobs {
		if err := ij.Init(); err != nil {
			return fmt.Errorf("initialize ignore_jobs: %w", err)
		}
	}
	return nil
}
