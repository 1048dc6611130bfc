package errors

import (
	"errors"
	"strings"
	"syscall"
)

// Category represents the type of error for display and handling purposes.
type Category int

const (
	// CategoryUnknown is the default for unclassified errors.
	CategoryUnknown Category = iota
	// CategoryUser indicates an error the user can fix (bad input, missing args).
	CategoryUser
	// CategorySystem indicates a system-level error (disk full, locked database).
	CategorySystem
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategorySystem:
		return "system"
	default:
		return "unknown"
	}
}

// Classify determines the category of an error.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	if IsUserError(err) {
		return CategoryUser
	}
	if IsSystemError(err) {
		return CategorySystem
	}
	if isSystemLevel(err) {
		return CategorySystem
	}

	return CategoryUnknown
}

// isSystemLevel checks if an error is a system-level error.
func isSystemLevel(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOSPC, syscall.EACCES, syscall.EPERM, syscall.EIO, syscall.EROFS:
			return true
		}
	}

	return errors.Is(err, ErrDiskFull) ||
		errors.Is(err, ErrRecordsCorrupted) ||
		errors.Is(err, ErrLockHeld) ||
		errors.Is(err, ErrPermissionDenied)
}

// FromStorage maps low-level storage failures onto sentinel system errors.
// Errors it does not recognise are returned unchanged.
func FromStorage(op string, err error) error {
	if err == nil {
		return nil
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOSPC:
			return NewSystemErrorWithOp(op, "disk full", ErrDiskFull)
		case syscall.EACCES, syscall.EPERM:
			return NewSystemErrorWithOp(op, "permission denied", ErrPermissionDenied)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "no space left on device"):
		return NewSystemErrorWithOp(op, "disk full", ErrDiskFull)
	case strings.Contains(msg, "cannot acquire directory lock"):
		return NewSystemErrorWithOp(op, "database is locked", ErrLockHeld)
	}

	return err
}

// FormatByCategory returns a user-appropriate error message based on category.
func FormatByCategory(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	suggestion := GetSuggestion(err)

	switch Classify(err) {
	case CategoryUser:
		if suggestion != "" {
			msg += "\n\nTry: " + suggestion
		}
		return msg + formatExamples(GetExamples(err))

	case CategorySystem:
		if suggestion != "" {
			return "System error: " + msg + "\n\n" + suggestion
		}
		return "System error: " + msg

	default:
		if suggestion != "" {
			return msg + "\n" + suggestion
		}
		return msg
	}
}

func formatExamples(examples []string) string {
	if len(examples) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\n\nExamples:")
	for _, ex := range examples {
		sb.WriteString("\n  ")
		sb.WriteString(ex)
	}
	return sb.String()
}
