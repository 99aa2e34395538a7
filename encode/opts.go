package encode

type encState struct {
	indent    string
	threshold int

	coordinate      map[string]bool
	controlFlow     map[string]bool
	alwaysMultiline map[string]bool
	rules           []*Rule
}

type Opt func(*encState)

// Indent sets the indentation unit (repeated once per nesting level).
func Indent(unit string) Opt {
	return func(es *encState) { es.indent = unit }
}

// InlineThreshold sets the maximum compact-rendering length for automatic
// inlining of otherwise-eligible arrays and objects.
func InlineThreshold(n int) Opt {
	return func(es *encState) { es.threshold = n }
}

func CoordinateFields(fields ...string) Opt {
	return func(es *encState) { es.coordinate = fieldSet(fields) }
}

func ControlFlowFields(fields ...string) Opt {
	return func(es *encState) { es.controlFlow = fieldSet(fields) }
}

func AlwaysMultilineFields(fields ...string) Opt {
	return func(es *encState) { es.alwaysMultiline = fieldSet(fields) }
}

// Rules installs compiled inline rules, evaluated before the built-in
// field tables. The first matching rule wins.
func Rules(rules ...*Rule) Opt {
	return func(es *encState) { es.rules = rules }
}

func fieldSet(fields []string) map[string]bool {
	m := make(map[string]bool, len(fields))
	for _, f := range fields {
		m[f] = true
	}
	return m
}
