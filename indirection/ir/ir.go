// Package ir lowers the indirection demo to LLVM IR, so the
// alloca/store/load chain behind a, b := &a and c := &b can be read
// instruction by instruction.
package ir

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

var (
	i8  = types.I8
	i32 = types.I32
	i64 = types.I64
)

type emitter struct {
	module *ir.Module
	printf *ir.Func
	block  *ir.Block

	stringCounter uint
}

// Emit builds a module whose main stores v in %a, points %b at %a and %c
// at %b, then prints the same lines as the text report.
func Emit(v int64) *ir.Module {
	e := &emitter{module: ir.NewModule()}

	e.printf = e.module.NewFunc("printf", i32, ir.NewParam("", types.NewPointer(i8)))
	e.printf.Sig.Variadic = true

	mainFunc := e.module.NewFunc("main", i32)
	e.block = mainFunc.NewBlock("entry")

	intPtr := types.NewPointer(i32)
	intPtrPtr := types.NewPointer(intPtr)

	a := e.block.NewAlloca(i32)
	a.SetName("a")
	b := e.block.NewAlloca(intPtr)
	b.SetName("b")
	c := e.block.NewAlloca(intPtrPtr)
	c.SetName("c")

	e.block.NewStore(constant.NewInt(i32, v), a)
	e.block.NewStore(a, b)
	e.block.NewStore(b, c)

	valA := e.load(i32, a, "a.val")
	valB := e.load(intPtr, b, "b.val")
	valC := e.load(intPtrPtr, c, "c.val")

	derefB := e.load(i32, valB, "b.deref")
	derefC := e.load(intPtr, valC, "c.deref")
	derefDerefC := e.load(i32, derefC, "c.deref2")

	e.print("&a: %p, &b: %p, &c: %p\n", a, b, c)
	e.print("a: %d, b: %p, c: %p\n", valA, valB, valC)
	e.print("*b: %d, *c: %p\n", derefB, derefC)
	e.print("**c: %d\n", derefDerefC)

	e.block.NewRet(constant.NewInt(i32, 0))

	return e.module
}

// String renders Emit(v) as textual IR.
func String(v int64) string {
	return fmt.Sprintln(Emit(v))
}

func (e *emitter) load(elemType types.Type, src value.Value, name string) *ir.InstLoad {
	l := e.block.NewLoad(elemType, src)
	l.SetName(name)
	return l
}

func (e *emitter) print(format string, args ...value.Value) {
	def := e.module.NewGlobalDef(e.nextStringName(), constant.NewCharArrayFromString(format+"\x00"))
	def.Immutable = true

	zero := constant.NewInt(i64, 0)
	fmtPtr := constant.NewGetElementPtr(def.ContentType, def, zero, zero)

	e.block.NewCall(e.printf, append([]value.Value{fmtPtr}, args...)...)
}

func (e *emitter) nextStringName() string {
	name := fmt.Sprintf("str.%d", e.stringCounter)
	e.stringCounter++
	return name
}
