package ir

import (
	"fmt"
	"strings"
)

// Dump renders instructions in the exact text format of spec.md §6: one
// instruction per line, two leading spaces.
func Dump(instructions []Instruction) string {
	var sb strings.Builder
	for _, instr := range instructions {
		sb.WriteString("  ")
		sb.WriteString(formatInstruction(instr))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func formatInstruction(instr Instruction) string {
	switch instr.Opcode {
	case LOAD:
		return fmt.Sprintf("LOAD %s -> %s", instr.Arg1, instr.Result)
	case STORE:
		return fmt.Sprintf("STORE %s -> %s", instr.Arg1, instr.Result)
	case ADD, SUB, MUL, DIV, CMP:
		return fmt.Sprintf("%s %s, %s -> %s", instr.Opcode, instr.Arg1, instr.Arg2, instr.Result)
	case JMP, JE, JNE, JG, JL:
		return fmt.Sprintf("%s %s", instr.Opcode, instr.Arg1)
	case CALL:
		return fmt.Sprintf("CALL %s", instr.Arg1)
	case RET, POP:
		return instr.Opcode.String()
	case PUSH:
		return fmt.Sprintf("PUSH %s", instr.Arg1)
	case PRINT:
		return fmt.Sprintf("PRINT %s", instr.Arg1)
	case LABEL:
		return instr.Arg1 + ":"
	default:
		return instr.Opcode.String()
	}
}
