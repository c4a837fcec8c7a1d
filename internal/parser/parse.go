// Package parser maps typed console lines to intents over the fishing
// commands: sell this, equip that, open a screen. Matching is forgiving
// about typos but asks instead of guessing when two readings tie.
package parser

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ParseContext feeds live names into argument resolution: species in the
// bag, owned gear, anything a command might name.
type ParseContext struct {
	KnownItems []string
}

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try help, sell, equip, bait, lure, bag, book, shop, stats, records, achievements.",
		}
		return intent
	}

	// A phrase that consumed more of the input outranks a tied shorter one
	// ("sell all" over "sell"); only a tie at equal length is ambiguous.
	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 &&
		alternates[0].Score > 0.65 && alternates[0].Consumed >= cmdMatch.Consumed {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				{Raw: raw, Normalised: cmdMatch.Canonical, Kind: commandKind(cmdMatch.Canonical), Verb: cmdMatch.Canonical, Confidence: cmdMatch.Score},
				{Raw: raw, Normalised: alternates[0].Canonical, Kind: commandKind(alternates[0].Canonical), Verb: alternates[0].Canonical, Confidence: alternates[0].Score},
			},
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}
	argsTokens, q := splitQuantity(argsTokens)
	intent.Quantity = q

	def, _ := p.registry.command(intent.Verb)
	if len(argsTokens) > 0 {
		arg, score := resolveItem(strings.Join(argsTokens, " "), ctx.KnownItems)
		intent.Args = []string{arg}
		intent.Confidence = clampScore((intent.Confidence * 0.75) + (score * 0.25))
	}

	if len(intent.Args) < def.MinArgs {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs something to act on.", def.Canonical)}
		intent.Confidence = 0.42
		return intent
	}
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "bag", "book", "shop", "stats", "records", "achievements":
		return Query
	default:
		return Command
	}
}

func splitQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for _, token := range tokens {
		if q == nil {
			if candidate := parseQuantityToken(token); candidate != nil {
				q = candidate
				continue
			}
		}
		out = append(out, token)
	}
	return out, q
}

// resolveItem snaps a typed name onto the closest known item. An unknown
// name passes through unchanged at reduced confidence so handlers can still
// report it.
func resolveItem(raw string, known []string) (string, float64) {
	raw = normaliseInput(raw)
	if len(known) == 0 {
		return raw, 0.7
	}

	best := ""
	bestDist := -1
	for _, k := range known {
		n := normaliseInput(k)
		if n == raw {
			return n, 1.0
		}
		if strings.HasPrefix(n, raw) && len(raw) >= 3 {
			return n, 0.9
		}
		dist := levenshtein.ComputeDistance(raw, n)
		if bestDist == -1 || dist < bestDist {
			best, bestDist = n, dist
		}
	}
	if bestDist >= 0 && bestDist <= levenshteinLimit(len(best)) {
		return best, 0.75 - 0.05*float64(bestDist)
	}
	return raw, 0.5
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
