package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/towerpool/server/internal/combat"
)

// Engine wraps a single gopher-lua VM for combat tuning.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given directory.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	vm.SetGlobal("MIN_SHIELD", lua.LNumber(combat.MinShield))
	vm.SetGlobal("MAX_SHIELD", lua.LNumber(combat.MaxShield))

	e := &Engine{vm: vm, log: log}

	// core helpers first, then combat rules that may use them
	for _, sub := range []string{"core", "combat"} {
		if err := e.loadDir(filepath.Join(scriptsDir, sub)); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Has reports whether a global Lua function with the given name is defined.
func (e *Engine) Has(name string) bool {
	_, ok := e.vm.GetGlobal(name).(*lua.LFunction)
	return ok
}

// ShieldDamage calls the Lua calc_shield_damage(base, shield) function and
// falls back to the built-in formula when the function is missing, errors, or
// returns something that is not a number. Results are floored at 1.
func (e *Engine) ShieldDamage(base, shield int) int {
	n, ok := e.callIntFunc("calc_shield_damage", base, shield)
	if !ok {
		return combat.ShieldDamage(base, shield)
	}
	return max(1, n)
}

var _ combat.Model = (*Engine)(nil)

func (e *Engine) callIntFunc(name string, args ...int) (int, bool) {
	fn := e.vm.GetGlobal(name)
	if fn == lua.LNil {
		e.log.Debug("lua function not found", zap.String("name", name))
		return 0, false
	}

	lArgs := make([]lua.LValue, len(args))
	for i, a := range args {
		lArgs[i] = lua.LNumber(a)
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lArgs...); err != nil {
		e.log.Error("lua call error", zap.String("func", name), zap.Error(err))
		return 0, false
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	num, ok := result.(lua.LNumber)
	if !ok {
		e.log.Error("lua function returned non-number",
			zap.String("func", name),
			zap.String("type", result.Type().String()),
		)
		return 0, false
	}
	return int(num), true
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
