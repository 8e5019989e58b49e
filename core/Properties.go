package core

import (
	"sort"
	"strconv"
)

const (
	Score1 = "score1"
	Score2 = "score2"
)

// IntListener is called after an IntProperty changed value.
type IntListener func(oldValue, newValue int)

// IntProperty is an observable integer. UI text binds to it through a
// listener instead of polling the world.
type IntProperty struct {
	name      string
	value     int
	listeners []IntListener
}

func (p *IntProperty) Name() string {
	return p.name
}

func (p *IntProperty) Value() int {
	return p.value
}

func (p *IntProperty) Set(v int) {
	if v == p.value {
		return
	}
	old := p.value
	p.value = v
	for _, l := range p.listeners {
		l(old, v)
	}
}

func (p *IntProperty) AddListener(l IntListener) {
	p.listeners = append(p.listeners, l)
}

// String renders the value the way bound text shows it.
func (p *IntProperty) String() string {
	return strconv.Itoa(p.value)
}

// Properties are the game wide variables living next to the entities,
// stored in the world as a resource.
type Properties struct {
	ints map[string]*IntProperty
}

func NewProperties() *Properties {
	return &Properties{ints: make(map[string]*IntProperty)}
}

// Put declares name with an initial value, or resets an existing one.
func (p *Properties) Put(name string, v int) {
	if prop, ok := p.ints[name]; ok {
		prop.Set(v)
		return
	}
	p.ints[name] = &IntProperty{name: name, value: v}
}

// IntProperty returns the property for name, declaring it at 0 if needed.
func (p *Properties) IntProperty(name string) *IntProperty {
	prop, ok := p.ints[name]
	if !ok {
		prop = &IntProperty{name: name}
		p.ints[name] = prop
	}
	return prop
}

func (p *Properties) Int(name string) int {
	return p.IntProperty(name).Value()
}

func (p *Properties) Increment(name string, delta int) {
	prop := p.IntProperty(name)
	prop.Set(prop.Value() + delta)
}

func (p *Properties) Names() []string {
	names := make([]string, 0, len(p.ints))
	for name := range p.ints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
