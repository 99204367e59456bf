package ledger

import "fmt"

// Call is a single native state transition understood by the Runtime. The set
// of variants is closed; new calls are added here and in Runtime.Dispatch.
type Call interface {
	// Pallet and Name identify the call in logs and events.
	Pallet() string
	Name() string

	isCall()
}

// TemplateDoSomething stores a value in the template pallet.
type TemplateDoSomething struct {
	Something uint32
}

func (TemplateDoSomething) Pallet() string { return templatePallet }
func (TemplateDoSomething) Name() string   { return "do_something" }
func (c TemplateDoSomething) String() string {
	return fmt.Sprintf("%s::%s(%d)", templatePallet, c.Name(), c.Something)
}
func (TemplateDoSomething) isCall() {}

// TemplateCauseError increments the stored value, failing if nothing is
// stored or the value would overflow.
type TemplateCauseError struct{}

func (TemplateCauseError) Pallet() string { return templatePallet }
func (TemplateCauseError) Name() string   { return "cause_error" }
func (c TemplateCauseError) String() string {
	return fmt.Sprintf("%s::%s()", templatePallet, c.Name())
}
func (TemplateCauseError) isCall() {}

// OriginKind classifies who a call is dispatched as.
type OriginKind uint8

const (
	OriginNone OriginKind = iota
	OriginRoot
	OriginSigned
)

func (k OriginKind) String() string {
	switch k {
	case OriginRoot:
		return "root"
	case OriginSigned:
		return "signed"
	}
	return "none"
}

// Origin is the authority a call executes with.
type Origin struct {
	Kind   OriginKind
	Signer AccountID // only meaningful for OriginSigned
}

// Signed returns an origin carrying exactly the authority of account.
func Signed(account AccountID) Origin {
	return Origin{Kind: OriginSigned, Signer: account}
}

func (o Origin) String() string {
	switch o.Kind {
	case OriginRoot:
		return "root"
	case OriginSigned:
		return "signed(" + o.Signer.String() + ")"
	}
	return "none"
}

// PostInfo is reported back for successful dispatches.
type PostInfo struct {
	ActualWeight uint64
	PaysFee      bool
}
