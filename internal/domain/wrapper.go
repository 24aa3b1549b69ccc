package domain

import (
	"fmt"
	"strings"
)

// File names inside every slot directory. The renderer uses the same layout
// at the root of the slots directory.
const (
	CommandFile = "cmd"
	RunFile     = "run"
	PipeFile    = "out"
	ErrFile     = "err"
)

const stripANSICodes = `sed 's/\x1b\[[0-9;]*m//g'`

// ShellQuote wraps s in single quotes for POSIX shells.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func IndentLines(indent string) string {
	return fmt.Sprintf(`awk -v indent=%s '{print indent $0}'`, ShellQuote(indent))
}

func ChopLines(width int) string {
	return fmt.Sprintf(`awk -v width=%d '{print substr($0, 1, width)}'`, width)
}

// TailLog is a pipeline printing the sanitized tail of file. A zero width
// limit disables chopping.
func TailLog(file string, policy NotificationPolicy) string {
	stages := []string{
		fmt.Sprintf("tail -n %d %s", policy.TailLines, file),
		stripANSICodes,
		IndentLines(policy.Indent),
	}
	if policy.WidthLimit > 0 {
		stages = append(stages, ChopLines(policy.WidthLimit))
	}
	return strings.Join(stages, " | ")
}

func NotifyCritical(subject, body string) string {
	return fmt.Sprintf("notify-send -u critical %s %s", subject, body)
}

// CommandScript is the user's feed command behind an interpreter directive.
func CommandScript(interpreter, command string) []byte {
	if strings.TrimSpace(interpreter) == "" {
		interpreter = DefaultInterpreter
	}
	return []byte(fmt.Sprintf("#!%s\n%s\n", interpreter, command))
}

// SlotRunScript wraps ./cmd with output redirection and an alert on exit.
func SlotRunScript(dir, slotName string, policy NotificationPolicy) []byte {
	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	b.WriteString("# Wraps ./" + CommandFile + " with output redirection and\n")
	b.WriteString("# a notification in case of an unexpected exit.\n")
	fmt.Fprintf(&b, "cd %s && ./%s > ./%s 2>> ./%s;\n", ShellQuote(dir), CommandFile, PipeFile, ErrFile)
	b.WriteString("code=$?\n")
	fmt.Fprintf(&b, "slot_name=%s\n", ShellQuote(slotName))
	fmt.Fprintf(&b, "log=$(%s)\n", TailLog(ErrFile, policy))
	b.WriteString("body=\"slot: $slot_name\ncode: $code\nlog:\n$log\"\n")
	b.WriteString(NotifyCritical("'pista feed exited!'", `"$body"`) + "\n")
	return []byte(b.String())
}

// RendererRunScript runs the renderer from the slots root, appending its
// output to ./out and ./err there.
func RendererRunScript(dir string, argv []string, policy NotificationPolicy) []byte {
	quoted := make([]string, 0, len(argv))
	for _, arg := range argv {
		quoted = append(quoted, ShellQuote(arg))
	}

	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	fmt.Fprintf(&b, "cd %s && %s >> ./%s 2>> ./%s;\n", ShellQuote(dir), strings.Join(quoted, " "), PipeFile, ErrFile)
	b.WriteString("code=$?\n")
	fmt.Fprintf(&b, "log=$(%s)\n", TailLog(ErrFile, policy))
	b.WriteString("body=\"code: $code\nlog:\n$log\"\n")
	b.WriteString(NotifyCritical("'pista exited!'", `"$body"`) + "\n")
	return []byte(b.String())
}
