package defs

import (
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/rules"
)

// Category groups definitions so that two of them only collide when
// they compete for the same kind of name, matching the original
// storage's kind-scoped getters (get_constant/get_function/
// get_classish): a function and a constant may share a fully-qualified
// or in-source name without colliding, and likewise for a type use
// against a function use.
type Category uint8

const (
	CategoryType Category = iota
	CategoryFunction
	CategoryConstant
)

// Category classifies any Definition kind, not just Use ones: a plain
// declaration and its corresponding use-import share a category, since
// both compete for the same storage slot.
func (k Kind) Category() Category {
	switch k {
	case KindFunction, KindUseFunction:
		return CategoryFunction
	case KindConstant, KindUseConstant:
		return CategoryConstant
	default:
		return CategoryType
	}
}

func (k Kind) isUse() bool {
	switch k {
	case KindUseType, KindUseFunction, KindUseConstant:
		return true
	default:
		return false
	}
}

// aliasUse records one already-accepted use import, to detect a second
// alias importing the same full name and a second use competing for
// the same local name.
type aliasUse struct {
	localName string
	fullName  string
	alias     string
	category  Category
	def       Definition
}

// Resolve walks every source's collected definitions in declaration
// order, assigns qualified names, inserts them into storage, and
// returns every diagnostic raised along the way. Grounded on the
// original analyzer's definition_collector.rs resolution pass and
// redundant_import.rs.
func Resolve(collector *Collector, sources []string) (*Storage, []issue.Issue) {
	storage := NewStorage()
	var issues []issue.Issue

	for _, origin := range sources {
		issues = append(issues, resolveSource(storage, origin, collector.Definitions(origin))...)
	}
	return storage, issues
}

func resolveSource(storage *Storage, origin string, defList []Definition) []issue.Issue {
	var issues []issue.Issue
	var namespace string
	haveNamespace := false
	var uses []aliasUse

	for _, d := range defList {
		if d.Kind == KindNamespace {
			namespace = d.UnqualifiedName
			haveNamespace = true
			continue
		}

		if d.Kind.isUse() {
			is, more := resolveUse(storage, origin, &d, namespace, haveNamespace, &uses)
			issues = append(issues, more...)
			if is {
				storage.Insert(d)
			}
			continue
		}

		qualified := d.UnqualifiedName
		if haveNamespace {
			qualified = namespace + "\\" + d.UnqualifiedName
		}
		d.QualifiedName = qualified

		if d.Kind.isTypeLike() && rules.IsReservedTypeName(d.UnqualifiedName) {
			issues = append(issues, issue.New("NameIsReservedTypeName", issue.Error,
				reservedNameMessage(storage, d.UnqualifiedName), origin, d.Range))
			continue
		}

		cat := d.Kind.Category()

		if existing, ok := storage.ByQualifiedName(cat, qualified); ok {
			issues = append(issues, issue.New("DuplicateItemDefinition", issue.Error,
				"\""+qualified+"\" is already defined", origin, d.Range).
				WithNote("previous definition here", existing.Source, existing.Range))
			continue
		}
		if existing, ok := storage.ByUnqualifiedNameInSource(cat, origin, d.UnqualifiedName); ok {
			issues = append(issues, issue.New("NameAlreadyInUse", issue.Error,
				"\""+d.UnqualifiedName+"\" is already in use in this source", origin, d.Range).
				WithNote("previous declaration here", existing.Source, existing.Range))
			continue
		}

		storage.Insert(d)
	}

	return issues
}

func resolveUse(storage *Storage, origin string, d *Definition, namespace string, haveNamespace bool, uses *[]aliasUse) (bool, []issue.Issue) {
	var issues []issue.Issue

	nameNode := d.Node.Field(ast.FieldName)
	if nameNode == nil {
		return false, issues
	}
	full := nameNode.Text
	head := full
	headNamespace := ""
	if idx := strings.LastIndex(full, "\\"); idx >= 0 {
		headNamespace = full[:idx]
		head = full[idx+1:]
	}

	localName := head
	aliasText := ""
	if aliasNode := d.Node.Field(ast.FieldAlias); aliasNode != nil {
		aliasText = aliasNode.Text
		localName = aliasText
	}

	if rules.IsReservedTypeName(head) || (aliasText != "" && rules.IsReservedTypeName(aliasText)) {
		reserved := head
		if aliasText != "" && rules.IsReservedTypeName(aliasText) {
			reserved = aliasText
		}
		issues = append(issues, issue.New("NameIsReservedTypeName", issue.Error,
			reservedNameMessage(storage, reserved), origin, d.Range))
		return false, issues
	}

	if aliasText == "" && haveNamespace && headNamespace == namespace {
		issues = append(issues, issue.New("RedundantUse", issue.Note,
			"importing \""+full+"\" is redundant: it is already in the current namespace", origin, d.Range))
	}

	cat := d.Kind.Category()

	for _, u := range *uses {
		if u.category == cat && strings.EqualFold(u.localName, localName) {
			issues = append(issues, issue.New("DuplicateUse", issue.Error,
				"\""+localName+"\" is already used in this source", origin, d.Range).
				WithNote("previous use here", u.def.Source, u.def.Range))
			return false, issues
		}
	}
	for _, u := range *uses {
		if u.category == cat && strings.EqualFold(u.fullName, full) && !strings.EqualFold(u.alias, aliasText) {
			issues = append(issues, issue.New("DuplicateUseDefinitionUnderAlias", issue.Warning,
				"\""+full+"\" is already imported under a different alias", origin, d.Range).
				WithNote("previous import here", u.def.Source, u.def.Range))
			break
		}
	}

	if aliasText != "" && strings.EqualFold(aliasText, head) {
		issues = append(issues, issue.New("RedundantAlias", issue.Note,
			"alias \""+aliasText+"\" is the same as the imported name", origin, d.Range))
	}

	d.UnqualifiedName = localName
	d.QualifiedName = full
	*uses = append(*uses, aliasUse{localName: localName, fullName: full, alias: aliasText, category: cat, def: *d})

	if existing, ok := storage.ByUnqualifiedNameInSource(cat, origin, localName); ok {
		issues = append(issues, issue.New("NameAlreadyInUse", issue.Error,
			"\""+localName+"\" is already in use in this source", origin, d.Range).
			WithNote("previous declaration here", existing.Source, existing.Range))
		return false, issues
	}

	return true, issues
}

// reservedNameMessage builds the diagnostic text for declaring or
// importing a reserved type name, adding a "did you mean" nudge toward
// an already-declared type with a similar spelling when one exists —
// a Jaro-Winkler fuzzy match (score >= 0.85) against every stored
// type-like definition whose name is not a case-insensitive match of
// the reserved name (e.g. declaring "String" when "Strings" is already
// declared).
func reservedNameMessage(storage *Storage, reserved string) string {
	message := "\"" + reserved + "\" is a reserved type name and cannot be declared or imported"

	best := ""
	var bestScore float32
	for _, d := range storage.Filter(func(d Definition) bool { return d.Kind.isTypeLike() }) {
		if strings.EqualFold(d.UnqualifiedName, reserved) {
			continue
		}
		score, err := edlib.StringsSimilarity(strings.ToLower(reserved), strings.ToLower(d.UnqualifiedName), edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if score > bestScore {
			bestScore = score
			best = d.UnqualifiedName
		}
	}
	if best != "" && bestScore >= 0.85 {
		message += "; did you mean \"" + best + "\"?"
	}
	return message
}
