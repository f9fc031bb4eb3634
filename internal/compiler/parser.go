package compiler

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/aretw0/decaytable/pkg/cst"
	"github.com/aretw0/decaytable/pkg/domain"
	"github.com/aretw0/decaytable/pkg/registry"
)

// Statement keywords.
const (
	kwDefine     = "Define"
	kwAlias      = "Alias"
	kwChargeConj = "ChargeConj"
	kwModelAlias = "ModelAlias"
	kwCopyDecay  = "CopyDecay"
	kwDecay      = "Decay"
	kwEnddecay   = "Enddecay"
	kwCDecay     = "CDecay"
	kwYesPhotos  = "yesPhotos"
	kwNoPhotos   = "noPhotos"
	kwJetSetPar  = "JetSetPar"
	kwLineshape  = "SetLineshapePW"
	kwEnd        = "End"
	kwPhotos     = "PHOTOS"
)

var (
	jetsetPar = regexp.MustCompile(`^([a-zA-Z]+)\((\d+)\)=(.+)$`)
	pythiaDef = regexp.MustCompile(`^([^:=]+):([^=]+)=(.+)$`)
)

// Parser converts decay-file text into a syntax tree.
type Parser struct {
	models *registry.Registry
}

// NewParser creates a parser that recognizes the models in models.
// A nil registry falls back to registry.Default().
func NewParser(models *registry.Registry) *Parser {
	if models == nil {
		models = registry.Default()
	}
	return &Parser{models: models}
}

// Parse tokenizes data and builds the file node.
func (p *Parser) Parse(data []byte) (*cst.Node, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	s := &state{
		models:  p.models,
		tokens:  NewLexer(data).Tokenize(),
		aliases: make(map[string]bool),
	}
	s.scanModelAliases()
	return s.file()
}

var utf8BOM = []byte("\ufeff")

type state struct {
	models  *registry.Registry
	tokens  []Token
	pos     int
	aliases map[string]bool // ModelAlias names declared anywhere in the file
}

// scanModelAliases records alias names up front so a decay line may use an
// alias declared further down the file.
func (s *state) scanModelAliases() {
	for i := 0; i+1 < len(s.tokens); i++ {
		if s.tokens[i].Type == WORD && s.tokens[i].Text == kwModelAlias && s.tokens[i+1].Type == WORD {
			s.aliases[s.tokens[i+1].Text] = true
		}
	}
}

func (s *state) peek() Token {
	return s.tokens[s.pos]
}

func (s *state) next() Token {
	tok := s.tokens[s.pos]
	if tok.Type != EOF {
		s.pos++
	}
	return tok
}

func (s *state) errorf(tok Token, format string, args ...any) error {
	return &SyntaxError{Pos: tok.Position, Msg: fmt.Sprintf(format, args...)}
}

func (s *state) word(what string) (Token, error) {
	tok := s.next()
	if tok.Type != WORD {
		return tok, s.errorf(tok, "expected %s, found %s", what, tok)
	}
	return tok, nil
}

func (s *state) number(what string) (Token, error) {
	tok, err := s.word(what)
	if err != nil {
		return tok, err
	}
	if !domain.IsNumeral(tok.Text) {
		return tok, s.errorf(tok, "expected %s, found %s", what, tok)
	}
	return tok, nil
}

func (s *state) particle() (*cst.Node, error) {
	tok, err := s.word("particle name")
	if err != nil {
		return nil, err
	}
	return leaf(cst.KindParticle, tok), nil
}

func (s *state) file() (*cst.Node, error) {
	root := cst.Tree(cst.KindFile)
	root.Line = 1
	for {
		tok := s.peek()
		if tok.Type == EOF {
			return root, nil
		}
		if tok.Type != WORD {
			return nil, s.errorf(tok, "unexpected %s", tok)
		}
		if tok.Text == kwEnd {
			s.next()
			if after := s.peek(); after.Type != EOF {
				return nil, s.errorf(after, "unexpected %s after End", after)
			}
			return root, nil
		}
		stmt, err := s.statement()
		if err != nil {
			return nil, err
		}
		stmt.Line = tok.Position.Line
		root.Children = append(root.Children, stmt)
	}
}

func (s *state) statement() (*cst.Node, error) {
	kw := s.next()
	switch kw.Text {
	case kwDefine:
		name, err := s.word("definition name")
		if err != nil {
			return nil, err
		}
		val, err := s.number("numeric value")
		if err != nil {
			return nil, err
		}
		return cst.Tree(cst.KindDefine, leaf(cst.KindLabel, name), leaf(cst.KindValue, val)), nil

	case kwAlias:
		return s.pair(cst.KindAlias)
	case kwChargeConj:
		return s.pair(cst.KindChargeConj)
	case kwCopyDecay:
		return s.pair(cst.KindCopyDecay)

	case kwCDecay:
		p, err := s.particle()
		if err != nil {
			return nil, err
		}
		return cst.Tree(cst.KindCDecay, p), nil

	case kwYesPhotos:
		return cst.Tree(cst.KindGlobalPhotos, leaf(cst.KindYes, kw)), nil
	case kwNoPhotos:
		return cst.Tree(cst.KindGlobalPhotos, leaf(cst.KindNo, kw)), nil

	case kwModelAlias:
		return s.modelAlias()
	case kwDecay:
		return s.decay()
	case kwJetSetPar:
		return s.jetset()
	case kwLineshape:
		return s.lineshape()
	}

	if strings.HasPrefix(kw.Text, "Pythia") && strings.HasSuffix(kw.Text, "Param") {
		return s.pythia()
	}
	return nil, s.errorf(kw, "unknown statement %s", kw)
}

func (s *state) pair(kind cst.Kind) (*cst.Node, error) {
	a, err := s.particle()
	if err != nil {
		return nil, err
	}
	b, err := s.particle()
	if err != nil {
		return nil, err
	}
	return cst.Tree(kind, a, b), nil
}

func (s *state) modelAlias() (*cst.Node, error) {
	name, err := s.word("model alias name")
	if err != nil {
		return nil, err
	}
	tok, err := s.word("model name")
	if err != nil {
		return nil, err
	}
	if !s.models.Has(tok.Text) {
		return nil, s.errorf(tok, "unknown model %s in ModelAlias %s", tok, name.Text)
	}
	model := cst.Tree(cst.KindModel, leaf(cst.KindModelName, tok))
	opts, err := s.options()
	if err != nil {
		return nil, err
	}
	if opts != nil {
		model.Children = append(model.Children, opts)
	}
	return cst.Tree(cst.KindModelAlias, leaf(cst.KindLabel, name), model), nil
}

// options reads model options up to and including the terminating ';'.
func (s *state) options() (*cst.Node, error) {
	var opts []*cst.Node
	for {
		tok := s.next()
		switch tok.Type {
		case SEMICOLON:
			if len(opts) == 0 {
				return nil, nil
			}
			return cst.Tree(cst.KindModelOptions, opts...), nil
		case EOF:
			return nil, s.errorf(tok, "missing ';' after model options")
		}
		if domain.IsNumeral(tok.Text) {
			opts = append(opts, leaf(cst.KindValue, tok))
		} else {
			opts = append(opts, leaf(cst.KindLabel, tok))
		}
	}
}

func (s *state) decay() (*cst.Node, error) {
	mother, err := s.particle()
	if err != nil {
		return nil, err
	}
	node := cst.Tree(cst.KindDecay, mother)
	for {
		tok := s.peek()
		if tok.Type == EOF {
			return nil, s.errorf(tok, "missing Enddecay for %s", mother.Value)
		}
		if tok.Type == WORD && tok.Text == kwEnddecay {
			s.next()
			return node, nil
		}
		line, err := s.decayLine()
		if err != nil {
			return nil, err
		}
		line.Line = tok.Position.Line
		node.Children = append(node.Children, line)
	}
}

func (s *state) decayLine() (*cst.Node, error) {
	bf, err := s.number("branching fraction")
	if err != nil {
		return nil, err
	}
	line := cst.Tree(cst.KindDecayLine, leaf(cst.KindValue, bf))
	photos := false
	for {
		tok := s.next()
		switch {
		case tok.Type == SEMICOLON:
			return nil, s.errorf(tok, "decay line without a model")
		case tok.Type == EOF:
			return nil, s.errorf(tok, "unterminated decay line")
		case tok.Text == kwPhotos:
			photos = true
			line.Children = append(line.Children, leaf(cst.KindPhotos, tok))
		case s.models.Has(tok.Text):
			model := cst.Tree(cst.KindModel, leaf(cst.KindModelName, tok))
			opts, err := s.options()
			if err != nil {
				return nil, err
			}
			if opts != nil {
				model.Children = append(model.Children, opts)
			}
			line.Children = append(line.Children, model)
			return line, nil
		case s.aliases[tok.Text]:
			model := cst.Tree(cst.KindModel, leaf(cst.KindModelLabel, tok))
			if end := s.next(); end.Type != SEMICOLON {
				return nil, s.errorf(end, "model alias %s takes no options, found %s", tok.Text, end)
			}
			line.Children = append(line.Children, model)
			return line, nil
		default:
			if photos {
				return nil, s.errorf(tok, "PHOTOS must directly precede the model, found %s", tok)
			}
			line.Children = append(line.Children, leaf(cst.KindParticle, tok))
		}
	}
}

func (s *state) jetset() (*cst.Node, error) {
	tok, err := s.word("PARAM(N)=VALUE")
	if err != nil {
		return nil, err
	}
	m := jetsetPar.FindStringSubmatch(tok.Text)
	if m == nil {
		return nil, s.errorf(tok, "malformed JetSetPar %s", tok)
	}
	return cst.Tree(cst.KindJetSetDef,
		at(cst.KindLabel, m[1], tok),
		at(cst.KindValue, m[2], tok),
		at(valueKind(m[3]), m[3], tok),
	), nil
}

func (s *state) pythia() (*cst.Node, error) {
	tok, err := s.word("MODULE:SETTING=VALUE")
	if err != nil {
		return nil, err
	}
	m := pythiaDef.FindStringSubmatch(tok.Text)
	if m == nil {
		return nil, s.errorf(tok, "malformed Pythia parameter %s", tok)
	}
	return cst.Tree(cst.KindPythiaDef,
		at(cst.KindLabel, m[1], tok),
		at(cst.KindLabel, m[2], tok),
		at(valueKind(m[3]), m[3], tok),
	), nil
}

func (s *state) lineshape() (*cst.Node, error) {
	node := cst.Tree(cst.KindLineshapePW)
	for i := 0; i < 3; i++ {
		p, err := s.particle()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, p)
	}
	val, err := s.number("partial wave")
	if err != nil {
		return nil, err
	}
	node.Children = append(node.Children, leaf(cst.KindValue, val))
	return node, nil
}

func valueKind(text string) cst.Kind {
	if domain.IsNumeral(text) {
		return cst.KindValue
	}
	return cst.KindLabel
}

func leaf(kind cst.Kind, tok Token) *cst.Node {
	return at(kind, tok.Text, tok)
}

func at(kind cst.Kind, value string, tok Token) *cst.Node {
	n := cst.Leaf(kind, value)
	n.Line = tok.Position.Line
	return n
}
