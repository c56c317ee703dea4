package classgen

import (
	"strings"

	"github.com/jptrs93/protoclass/internal/ir"
)

// requiredTagMarker in a field's trailing comment marks an optional or repeated field as
// required for IsInitialized.
const requiredTagMarker = "[required=true]"

type requiredState int

const (
	requiredInProgress requiredState = iota + 1
	requiredYes
	requiredNo
)

// requiredMemo records the analysis state per message full name. Any entry, including
// requiredInProgress, short-circuits the walk.
type requiredMemo map[string]requiredState

func hasRequiredTag(field ir.Field) bool {
	return strings.Contains(field.TrailingComment, requiredTagMarker)
}

// isTransitivelyRequired reports whether values of the named message need an
// initialization check: it has extension ranges, a required or tagged field, or a message
// field whose type is itself transitively required.
//
// A type already present in memo yields false. For a type still in progress up the stack,
// any requirement it has is reported by that outer frame, so the walk terminates on cyclic
// type graphs.
func isTransitivelyRequired(index *ir.Index, fullName string, memo requiredMemo) (bool, error) {
	if _, seen := memo[fullName]; seen {
		return false, nil
	}
	memo[fullName] = requiredInProgress

	msg, err := index.Message(fullName)
	if err != nil {
		return false, err
	}
	required, err := requiredWalk(index, msg, memo)
	if err != nil {
		return false, err
	}
	if required {
		memo[fullName] = requiredYes
	} else {
		memo[fullName] = requiredNo
	}
	return required, nil
}

func requiredWalk(index *ir.Index, msg *ir.Message, memo requiredMemo) (bool, error) {
	if len(msg.ExtensionRanges) > 0 {
		return true, nil
	}
	for _, field := range msg.Fields {
		if field.IsRequired() || hasRequiredTag(field) {
			return true, nil
		}
		if !field.Kind.IsMessage() {
			continue
		}
		required, err := isTransitivelyRequired(index, field.MessageFullName, memo)
		if err != nil {
			return false, err
		}
		if required {
			return true, nil
		}
	}
	return false, nil
}

// needsInitCheck runs the analysis for one embedded message field with a fresh memo.
func needsInitCheck(index *ir.Index, field ir.Field) (bool, error) {
	return isTransitivelyRequired(index, field.MessageFullName, requiredMemo{})
}
