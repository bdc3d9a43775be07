// Package shell renders environment variable assignments for the common
// shells so that callers can eval the output of the intervals CLI.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// EnvName derives a variable name from key: upper-cased, '-' replaced by
// '_', and prefixed with prefix.
func EnvName(key string, prefix string) string {
	varName := strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
	if prefix != "" {
		varName = prefix + varName
	}
	return varName
}

// splitPreserveNewlines 将 s 拆分成若干片段，换行序列 "\r\n"、"\r"、"\n" 作为单独元素保留在结果中。
// 示例 "a\r\nb\nc\r" -> ["a", "\r\n", "b", "\n", "c", "\r"]
func splitPreserveNewlines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var parts []string
	var buf strings.Builder
	for i := 0; i < len(s); {
		ch := s[i]
		if ch != '\r' && ch != '\n' {
			buf.WriteByte(ch)
			i++
			continue
		}
		if buf.Len() > 0 {
			parts = append(parts, buf.String())
			buf.Reset()
		}
		if ch == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			parts = append(parts, "\r\n")
			i += 2
		} else {
			parts = append(parts, string(ch))
			i++
		}
	}
	if buf.Len() > 0 {
		parts = append(parts, buf.String())
	}
	return parts
}

// shLiteral wraps s in single quotes; embedded quotes become '\''.
func shLiteral(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// powershellLiteral returns a single expression, joining newline pieces with +.
func powershellLiteral(s string) string {
	var out []string
	for _, p := range splitPreserveNewlines(s) {
		switch p {
		case "\n":
			out = append(out, "\"`n\"")
		case "\r":
			out = append(out, "\"`r\"")
		case "\r\n":
			out = append(out, "\"`r`n\"")
		default:
			out = append(out, psQuote(p))
		}
	}
	return strings.Join(out, " + ")
}

// cmdLiteral keeps newlines as literal \r \n escapes inside double quotes.
func cmdLiteral(s string) string {
	var out []string
	for _, p := range splitPreserveNewlines(s) {
		switch p {
		case "\n":
			out = append(out, `"\\n"`)
		case "\r":
			out = append(out, `"\\r"`)
		case "\r\n":
			out = append(out, `"\\r\\n"`)
		default:
			out = append(out, `"`+strings.ReplaceAll(p, `"`, `\"`)+`"`)
		}
	}
	return strings.Join(out, "")
}

// Assign renders the statement setting varName to val. When persist is
// true the variable is exported (sh) or stored for the user (powershell,
// cmd).
func Assign(shellType ShellType, varName string, val string, persist bool) (string, error) {
	switch shellType {
	case ShellTypeSh:
		if persist {
			return fmt.Sprintf("export %s=%s", varName, shLiteral(val)), nil
		}
		return fmt.Sprintf("%s=%s", varName, shLiteral(val)), nil
	case ShellTypePowershell:
		if persist {
			return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable(%s,%s,'User')", psQuote(varName), powershellLiteral(val)), nil
		}
		return fmt.Sprintf("$Env:%s = %s", varName, powershellLiteral(val)), nil
	case ShellTypeCmd:
		if persist {
			return fmt.Sprintf("setx %s %s", varName, cmdLiteral(val)), nil
		}
		return fmt.Sprintf("set \"%s=%s\"", varName, strings.Trim(cmdLiteral(val), `"`)), nil
	default:
		return "", fmt.Errorf("unsupported shell type: %v", shellType)
	}
}

// Resolve returns shellType, detecting the user shell when it is ShellTypeAuto.
func Resolve(shellType ShellType) (ShellType, error) {
	switch shellType {
	case ShellTypeSh, ShellTypePowershell, ShellTypeCmd:
		return shellType, nil
	}
	shellName, err := detectUserShell()
	if err != nil {
		return ShellTypeAuto, fmt.Errorf("cannot detect user shell: %w", err)
	}
	return classify(shellName), nil
}

func classify(shellName string) ShellType {
	shellName = strings.TrimSuffix(strings.ToLower(shellName), ".exe")
	switch shellName {
	case "powershell", "pwsh":
		return ShellTypePowershell
	case "cmd":
		return ShellTypeCmd
	default:
		return ShellTypeSh
	}
}

var knownShells = []string{
	"bash", "zsh", "fish", "ksh", "sh", "dash", "tcsh", "csh",
	"powershell", "pwsh", "cmd",
}

// detectUserShell walks the parent process chain looking for a known shell,
// then falls back to SHELL or COMSPEC.
func detectUserShell() (string, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return "", fmt.Errorf("cannot get parent process: %w", err)
	}
	seen := map[int32]struct{}{}
	for p != nil {
		if _, ok := seen[p.Pid]; ok {
			break
		}
		seen[p.Pid] = struct{}{}

		name, _ := p.Name()
		exe, _ := p.Exe()
		n := strings.ToLower(name)
		if n == "" && exe != "" {
			n = strings.ToLower(filepath.Base(exe))
		}
		for _, k := range knownShells {
			if strings.Contains(n, k) {
				if name != "" {
					return name, nil
				}
				return filepath.Base(exe), nil
			}
		}

		parent, perr := p.Parent()
		if perr != nil || parent == nil {
			break
		}
		p = parent
	}

	// 回退环境变量（UNIX: SHELL，Windows: COMSPEC），它们只是默认 shell
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}
	return "", fmt.Errorf("user shell not detected")
}
