// Package cascade sequences the sector-resolution pipeline: override table,
// registry lookup, code classification, keyword scoring of registry labels
// and web snippets, and finally the language-model classifier. Each input
// resolves to exactly one ClassificationResult; no stage failure ever
// propagates to the caller.
package cascade

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/leadpilot/sector-cli/internal/competitor"
	"github.com/leadpilot/sector-cli/internal/model"
	"github.com/leadpilot/sector-cli/internal/normalize"
	"github.com/leadpilot/sector-cli/internal/override"
	"github.com/leadpilot/sector-cli/internal/scorer"
	"github.com/leadpilot/sector-cli/internal/taxonomy"
	"github.com/leadpilot/sector-cli/pkg/llm"
	"github.com/leadpilot/sector-cli/pkg/registry"
	"github.com/leadpilot/sector-cli/pkg/websearch"
)

const directoryBaseURL = "https://annuaire-entreprises.data.gouv.fr"

// Orchestrator runs the resolution cascade for one input at a time.
// Collaborators may be nil; a nil collaborator behaves like one that found
// nothing.
type Orchestrator struct {
	normalizer *normalize.Normalizer
	overrides  *override.Table
	catalog    *taxonomy.Catalog
	scorer     *scorer.Scorer
	registry   registry.Client
	web        websearch.Client
	ai         llm.Classifier
}

// New creates an orchestrator over the given collaborators.
func New(
	normalizer *normalize.Normalizer,
	overrides *override.Table,
	catalog *taxonomy.Catalog,
	reg registry.Client,
	web websearch.Client,
	ai llm.Classifier,
) *Orchestrator {
	return &Orchestrator{
		normalizer: normalizer,
		overrides:  overrides,
		catalog:    catalog,
		scorer:     scorer.New(catalog.Sectors()),
		registry:   reg,
		web:        web,
		ai:         ai,
	}
}

// Classify resolves one raw input to a ClassificationResult. It never
// returns an error and never panics outward: unexpected faults become a
// CRASHED result.
func (o *Orchestrator) Classify(ctx context.Context, raw string) (result model.ClassificationResult) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("cascade: recovered panic",
				zap.String("input", raw),
				zap.Any("panic", r),
			)
			result = model.ClassificationResult{
				Input:        raw,
				OfficialName: model.SectorError,
				Sector:       model.SectorError,
				Detail:       fmt.Sprintf("%v", r),
				Source:       model.SourceCrash,
				State:        model.StateCrashed,
				Confidence:   "0",
				Address:      "-",
				Region:       "-",
				Headcount:    "-",
				Permalink:    "-",
			}
		}
	}()

	candidate, eligible := o.normalizer.Extract(raw)
	if !eligible {
		return model.ClassificationResult{
			Input:        raw,
			OfficialName: "N/A",
			Sector:       model.SectorOutOfScope,
			Detail:       "Email personnel ignoré",
			Source:       model.SourceFilter,
			State:        model.StateIneligible,
			Confidence:   "0",
			Address:      "-",
			Region:       "-",
			Headcount:    "-",
			Permalink:    "-",
		}
	}

	// Freshness: corrections written by other workers since the last call
	// must be visible to this one.
	if err := o.catalog.Reload(ctx); err != nil {
		zap.L().Warn("cascade: catalog reload failed", zap.Error(err))
	}
	snap := o.catalog.Snapshot()

	key := normalize.Key(candidate)
	forced := snap.ForcedSector(key)
	rec := o.overrides.Lookup(candidate)

	// A hardcoded override with an address is ground truth for identity and
	// location: skip all network calls. A user correction still outranks
	// the hardcoded sector.
	if rec != nil && rec.Address != "" {
		sector := rec.Sector
		detail := "Base interne"
		if forced != "" {
			sector = forced
			detail = "Correction utilisateur"
		}
		return o.finish(model.ClassificationResult{
			Input:        raw,
			OfficialName: rec.OfficialName,
			Sector:       sector,
			Detail:       detail,
			Source:       model.SourceOverride,
			State:        model.StateOverrideHit,
			Confidence:   "100%",
			Address:      rec.Address,
			Region:       orDash(rec.Region),
			Headcount:    orDash(rec.Headcount),
			Permalink:    overridePermalink(rec),
		}, rec)
	}

	// Registry lookup. An alias that mapped to a canonical name improves
	// search quality even without a full override record.
	query := candidate
	if rec != nil && rec.OfficialName != "" {
		query = rec.OfficialName
	}
	reg := o.searchRegistry(ctx, query)

	officialName := candidate
	address := ""
	region := ""
	headcount := ""
	permalink := ""

	if reg != nil {
		officialName = reg.LegalName
		address = reg.Address
		region = reg.Region
		if region == "" && reg.PostalCode != "" {
			region = taxonomy.RegionForPostalCode(reg.PostalCode)
		}
		headcount = taxonomy.HeadcountLabel(reg.HeadcountCode)
		if reg.Identifier != "" {
			permalink = directoryBaseURL + "/entreprise/" + reg.Identifier
		}

		// Forced sector or NAF code both count as authoritative.
		sector := forced
		detail := "Correction utilisateur + API"
		if sector == "" {
			sector = taxonomy.ClassifyNAF(o.catalog.Sectors(), reg.IndustryCode)
			detail = fmt.Sprintf("Code NAF: %s", reg.IndustryCode)
		}
		if sector != "" {
			return o.finish(model.ClassificationResult{
				Input:        raw,
				OfficialName: officialName,
				Sector:       sector,
				Detail:       detail,
				Source:       model.SourceRegistry,
				State:        model.StateRegistryResolved,
				Confidence:   "100%",
				Address:      orDash(address),
				Region:       orDash(region),
				Headcount:    headcount,
				Permalink:    orDash(permalink),
			}, rec)
		}

		// The code said nothing usable; the activity label might.
		if reg.IndustryLabel != "" {
			scores := o.scorer.Score(reg.IndustryLabel, scorer.SnippetWeight)
			if best, score := o.scorer.Best(scores); score > 0 {
				return o.finish(model.ClassificationResult{
					Input:        raw,
					OfficialName: officialName,
					Sector:       best,
					Detail:       fmt.Sprintf("Libellé NAF %q (%.0f)", reg.IndustryLabel, score),
					Source:       model.SourceRegistry,
					State:        model.StateLabelScored,
					Confidence:   fmt.Sprintf("%.0f", score),
					Address:      orDash(address),
					Region:       orDash(region),
					Headcount:    headcount,
					Permalink:    orDash(permalink),
				}, rec)
			}
		}
	}

	// Registry gave no sector. A forced sector or a sector-only override
	// settles it with whatever identity data is on hand.
	if forced != "" || rec != nil {
		sector := forced
		detail := "Correction utilisateur (API muette)"
		name := officialName
		if sector == "" {
			sector = rec.Sector
			detail = "Base interne (API muette)"
		}
		if rec != nil && rec.OfficialName != "" {
			name = rec.OfficialName
		}
		return o.finish(model.ClassificationResult{
			Input:        raw,
			OfficialName: name,
			Sector:       sector,
			Detail:       detail,
			Source:       model.SourceOverride,
			State:        model.StateOverrideHit,
			Confidence:   "100%",
			Address:      orDash(address),
			Region:       orDash(region),
			Headcount:    orDash(headcount),
			Permalink:    searchPermalink(name),
		}, rec)
	}

	// Web snippet scoring.
	trace := o.searchWeb(ctx, candidate)
	if trace != nil {
		scores := o.scorer.Score(trace.Title+" "+trace.Body, scorer.SnippetWeight)
		if best, score := o.scorer.Best(scores); score > 0 && best != model.SectorUnknown {
			name := officialName
			if trace.Title != "" && len(trace.Title) < 60 {
				name = trace.Title
			}
			return o.finish(model.ClassificationResult{
				Input:        raw,
				OfficialName: name,
				Sector:       best,
				Detail:       fmt.Sprintf("Analyse Web (%s)", trace.URL),
				Source:       model.SourceWeb,
				State:        model.StateWebScored,
				Confidence:   fmt.Sprintf("%.0f", score),
				Address:      fallback(address, "International / Web"),
				Region:       fallback(region, "Monde"),
				Headcount:    orDash(headcount),
				Permalink:    fallback(permalink, searchPermalink(candidate)),
			}, rec)
		}
	}

	// Language-model classifier, constrained to the full allowed list.
	if o.ai != nil {
		cls, err := o.ai.Classify(ctx, candidate, o.catalog.SectorNames())
		if err != nil {
			zap.L().Warn("cascade: ai classify failed",
				zap.String("company", candidate),
				zap.Error(err),
			)
		}
		if cls != nil {
			return o.finish(model.ClassificationResult{
				Input:        raw,
				OfficialName: officialName,
				Sector:       cls.Sector,
				Detail:       fmt.Sprintf("IA (%s): %s", cls.Confidence, cls.Reasoning),
				Source:       model.SourceAI,
				State:        model.StateAIResolved,
				Confidence:   "100%",
				Address:      fallback(address, "-"),
				Region:       fallback(region, "Monde"),
				Headcount:    orDash(headcount),
				Permalink:    fallback(permalink, searchPermalink(candidate)),
			}, rec)
		}
	}

	// A web trace without a single keyword hit still tells a human where
	// to look.
	if trace != nil {
		return o.finish(model.ClassificationResult{
			Input:        raw,
			OfficialName: officialName,
			Sector:       model.SectorReview,
			Detail:       fmt.Sprintf("Trace web sans mot-clé (%s)", trace.URL),
			Source:       model.SourceWeb,
			State:        model.StateDegradedWebTrace,
			Confidence:   "10%",
			Address:      fallback(address, "-"),
			Region:       fallback(region, "-"),
			Headcount:    orDash(headcount),
			Permalink:    fallback(permalink, searchPermalink(candidate)),
		}, rec)
	}

	return o.finish(model.ClassificationResult{
		Input:        raw,
		OfficialName: officialName,
		Sector:       model.SectorNotFound,
		Detail:       "Aucun résultat probant",
		Source:       model.SourceNone,
		State:        model.StateUnresolved,
		Confidence:   "0",
		Address:      "-",
		Region:       "-",
		Headcount:    "-",
		Permalink:    "-",
	}, rec)
}

// searchRegistry returns the first usable registry record, or nil. Works
// councils and committees carry the host company's name without being the
// company, so they are skipped.
func (o *Orchestrator) searchRegistry(ctx context.Context, query string) *model.RegistryRecord {
	if o.registry == nil {
		return nil
	}
	records, err := o.registry.Search(ctx, query)
	if err != nil {
		zap.L().Warn("cascade: registry search failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil
	}
	if len(records) == 0 {
		return nil
	}
	for i := range records {
		if !isCommittee(records[i].LegalName) {
			return &records[i]
		}
	}
	return &records[0]
}

func (o *Orchestrator) searchWeb(ctx context.Context, query string) *websearch.Result {
	if o.web == nil {
		return nil
	}
	res, err := o.web.SearchTop(ctx, query)
	if err != nil {
		zap.L().Warn("cascade: web search failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil
	}
	return res
}

// finish applies competitor detection to the settled display name.
func (o *Orchestrator) finish(result model.ClassificationResult, rec *model.OverrideRecord) model.ClassificationResult {
	if rec != nil && rec.IsCompetitor {
		result.IsCompetitor = true
	} else {
		result.IsCompetitor = competitor.Match(result.OfficialName)
	}
	zap.L().Debug("cascade: resolved",
		zap.String("input", result.Input),
		zap.String("sector", result.Sector),
		zap.String("state", string(result.State)),
	)
	return result
}

func isCommittee(name string) bool {
	upper := strings.ToUpper(name)
	return strings.Contains(upper, "COMITE") || strings.Contains(upper, "CSE ")
}

func overridePermalink(rec *model.OverrideRecord) string {
	if rec.Identifier != "" {
		return directoryBaseURL + "/entreprise/" + rec.Identifier
	}
	return searchPermalink(rec.OfficialName)
}

func searchPermalink(name string) string {
	return directoryBaseURL + "/rechercher?q=" + url.QueryEscape(name)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func fallback(s, alt string) string {
	if s == "" {
		return alt
	}
	return s
}
