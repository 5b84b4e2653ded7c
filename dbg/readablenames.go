package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names, so that shapes in
// a preview or a log line can be told apart at a glance. Names are handed out
// lazily and never forgotten.

var (
	namesMu sync.Mutex
	memo    map[interface{}]string
	used    map[string]bool
)

func init() {
	memo = make(map[interface{}]string)
	used = make(map[string]bool)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the readable name of obj. Equal values get the same name.
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}
	key := obj
	if !reflect.TypeOf(obj).Comparable() {
		key = fmt.Sprintf("%T%#v", obj, obj)
	}

	namesMu.Lock()
	defer namesMu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fresh()
	memo[key] = r
	used[r] = true
	return r
}

func fresh() string {
	for {
		r := title(petname.Adjective()) + title(petname.Name())
		if !used[r] {
			return r
		}
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
