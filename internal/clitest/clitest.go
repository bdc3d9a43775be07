// Package clitest runs in-process CLI cases described in YAML files. Each
// case sets os.Args and environment variables, captures stdout and stderr
// separately and compares them, together with the exit code, to the
// expectation stored in the file.
//
//	tests:
//	  - name: float from env
//	    env:
//	      INTERVALS_TYPE: float
//	    args: [eval, "(0.5,1]"]
//	    expect:
//	      stdout: |
//	        (0.5 ; 1]
package clitest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

// Case is one command invocation.
type Case struct {
	Name   string            `yaml:"name"`
	Args   []string          `yaml:"args"` // 参数数组，规避引号问题
	Env    map[string]string `yaml:"env"`
	Expect Expect            `yaml:"expect"`
}

type Expect struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exitCode"`
}

// file is one YAML file together with the node tree used to write back
// updated expectations without losing comments.
type file struct {
	path  string
	root  *yaml.Node
	nodes []*yaml.Node
	cases []Case
}

// Suite is the set of YAML files of a directory.
type Suite struct {
	program string
	run     func() int
	files   []*file
	mu      sync.Mutex
}

// Read loads every .yaml/.yml file under dir. program is os.Args[0] for the
// cases and run is the in-process entry point returning the exit code.
func Read(dir string, program string, run func() int) (*Suite, error) {
	s := &Suite{program: program, run: run}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}
		f, err := readFile(path)
		if err != nil {
			return err
		}
		s.files = append(s.files, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func readFile(path string) (*file, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%s: empty yaml", path)
	}
	tests, err := locateTests(root.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f := &file{path: path, root: &root, nodes: tests.Content}
	if err := tests.Decode(&f.cases); err != nil {
		return nil, fmt.Errorf("%s: decode tests: %w", path, err)
	}
	return f, nil
}

// locateTests accepts either a top-level sequence or a mapping with a
// "tests" sequence.
func locateTests(doc *yaml.Node) (*yaml.Node, error) {
	switch doc.Kind {
	case yaml.SequenceNode:
		return doc, nil
	case yaml.MappingNode:
		if v := findMapValue(doc, "tests"); v != nil {
			if v.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("tests must be a sequence")
			}
			return v, nil
		}
		return nil, fmt.Errorf("missing 'tests' key")
	default:
		return nil, fmt.Errorf("unsupported top-level yaml kind: %v", doc.Kind)
	}
}

// Run executes all cases. With update set, mismatching expectations are
// written back to their files instead of failing.
func (s *Suite) Run(t *testing.T, update bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.files {
		t.Run(filepath.Base(f.path), func(t *testing.T) {
			changed := false
			for i := range f.cases {
				name := f.cases[i].Name
				if name == "" {
					name = fmt.Sprintf("Case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					if s.runCase(t, f, i, update) {
						changed = true
					}
				})
			}
			if changed {
				if err := f.persist(); err != nil {
					t.Fatalf("persist %s: %v", f.path, err)
				}
				t.Logf("clitest: updated %s", f.path)
			}
		})
	}
}

type envSnapshot struct {
	value  string
	exists bool
}

// capture runs s.run with args and env, returning stdout, stderr and the
// exit code.
func (s *Suite) capture(t *testing.T, args []string, env map[string]string) (string, string, int) {
	// 保存现场
	oldArgs, oldStdout, oldStderr := os.Args, os.Stdout, os.Stderr
	oldEnv := make(map[string]envSnapshot, len(env))
	for k, v := range env {
		val, exists := os.LookupEnv(k)
		oldEnv[k] = envSnapshot{value: val, exists: exists}
		os.Setenv(k, v)
	}
	defer func() {
		os.Args, os.Stdout, os.Stderr = oldArgs, oldStdout, oldStderr
		for k, snap := range oldEnv {
			if snap.exists {
				os.Setenv(k, snap.value)
			} else {
				os.Unsetenv(k)
			}
		}
	}()

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Args = append([]string{s.program}, args...)
	os.Stdout, os.Stderr = wOut, wErr

	var stdout, stderr bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = io.Copy(&stdout, rOut)
	}()
	go func() {
		defer wg.Done()
		_, _ = io.Copy(&stderr, rErr)
	}()

	exitCode := func() (code int) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				code = -1
			}
		}()
		return s.run()
	}()

	_ = wOut.Close()
	_ = wErr.Close()
	wg.Wait()
	_ = rOut.Close()
	_ = rErr.Close()
	return stdout.String(), stderr.String(), exitCode
}

// runCase reports whether the expectation of case i was updated.
func (s *Suite) runCase(t *testing.T, f *file, i int, update bool) bool {
	c := &f.cases[i]
	stdout, stderr, exitCode := s.capture(t, c.Args, c.Env)

	expect := ensureMapValue(f.nodes[i], "expect")
	changed := false
	if exitCode != c.Expect.ExitCode {
		if update {
			c.Expect.ExitCode = exitCode
			setIntScalar(ensureMapValue(expect, "exitCode"), exitCode)
			changed = true
		} else {
			t.Errorf("exit code mismatch:\nexpected: %d\nactual:   %d", c.Expect.ExitCode, exitCode)
		}
	}
	if stdout != c.Expect.Stdout {
		if update {
			c.Expect.Stdout = stdout
			setStringScalar(ensureMapValue(expect, "stdout"), stdout)
			changed = true
		} else {
			t.Errorf("stdout mismatch:\nexpected:\n%s\nactual:\n%s", c.Expect.Stdout, stdout)
		}
	}
	if stderr != c.Expect.Stderr {
		if update {
			c.Expect.Stderr = stderr
			setStringScalar(ensureMapValue(expect, "stderr"), stderr)
			changed = true
		} else {
			t.Errorf("stderr mismatch:\nexpected:\n%s\nactual:\n%s", c.Expect.Stderr, stderr)
		}
	}
	return changed
}

func (f *file) persist() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f.root.Content[0]); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(f.path, buf.Bytes(), 0o644)
}

func findMapValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func ensureMapValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		m.Kind = yaml.MappingNode
		m.Tag = "!!map"
		m.Content = nil
	}
	if v := findMapValue(m, key); v != nil {
		return v
	}
	k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str"}
	m.Content = append(m.Content, k, v)
	return v
}

func setStringScalar(node *yaml.Node, val string) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!str"
	// 单个换行用双引号，避免写成空 literal block
	if val == "\n" || val == "\r\n" {
		node.Style = yaml.DoubleQuotedStyle
	} else {
		node.Style = 0
	}
	node.Value = val
}

func setIntScalar(node *yaml.Node, val int) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!int"
	node.Style = 0
	node.Value = strconv.Itoa(val)
}
