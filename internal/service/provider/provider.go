package provider

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/hasher"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/logger"
	wrap "github.com/Temutjin2k/rickshaw-analytics/pkg/logger/wrapper"
	"github.com/Temutjin2k/rickshaw-analytics/pkg/metrics"
)

type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	Name() string
}

// Provider owns the dataset document. It retrieves it exactly once and
// exposes one of three states: loading, ready or failed.
type Provider struct {
	source Source
	log    logger.Logger

	once sync.Once
	done chan struct{}

	mu    sync.RWMutex
	state models.State
}

func New(source Source, log logger.Logger) *Provider {
	metrics.SetDatasetState(models.StatusLoading.String())
	return &Provider{
		source: source,
		log:    log,
		done:   make(chan struct{}),
		state:  models.Loading(),
	}
}

// Start launches the one-shot retrieval in the background. Further calls do nothing.
func (p *Provider) Start(ctx context.Context) {
	p.once.Do(func() {
		go p.load(ctx)
	})
}

// Load runs the retrieval synchronously (if it has not run yet) and returns the final state.
func (p *Provider) Load(ctx context.Context) models.State {
	p.once.Do(func() {
		p.load(ctx)
	})
	<-p.done
	return p.State()
}

// Done is closed once the retrieval has resolved.
func (p *Provider) Done() <-chan struct{} {
	return p.done
}

// State returns the current state. The document inside is shared and must not be mutated.
func (p *Provider) State() models.State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *Provider) Source() string {
	return p.source.Name()
}

func (p *Provider) load(ctx context.Context) {
	defer close(p.done)

	ctx = wrap.WithLogCtx(ctx, wrap.LogCtx{Action: types.ActionDatasetLoad, Source: p.source.Name()})
	p.log.Info(ctx, "loading dataset")

	start := time.Now()
	doc, digest, err := p.fetch(ctx)
	duration := time.Since(start)

	if err != nil {
		kind := types.KindOf(err)
		metrics.RecordDatasetLoad(p.source.Name(), kind.String(), err, duration)
		p.set(models.Failed(kind, err.Error()))

		p.log.Error(wrap.WithAction(wrap.ErrorCtx(ctx, err), types.ActionDatasetFailed), "failed to load dataset", err,
			"kind", kind,
			"duration", duration,
		)
		return
	}

	metrics.RecordDatasetLoad(p.source.Name(), "", nil, duration)
	p.audit(ctx, doc)

	ready := models.Ready(doc)
	ready.Digest = digest
	p.set(ready)

	p.log.Info(wrap.WithAction(ctx, types.ActionDatasetReady), "dataset loaded",
		"hours", len(doc.HourlyData),
		"distance_buckets", len(doc.DistanceData),
		"fare_buckets", len(doc.FareData),
		"pickup_buckets", len(doc.PickupDistanceData),
		"digest", digest,
		"duration", duration,
	)
}

func (p *Provider) fetch(ctx context.Context) (*models.Document, string, error) {
	body, err := p.source.Fetch(ctx)
	if err != nil {
		return nil, "", wrap.Error(ctx, err)
	}

	var doc models.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, "", wrap.Error(ctx, types.NewParseError(err))
	}

	return &doc, hasher.Sum(body), nil
}

// audit logs invariant violations without touching the document.
func (p *Provider) audit(ctx context.Context, doc *models.Document) {
	issues := doc.Inconsistencies()
	metrics.DatasetInconsistencies.Set(float64(len(issues)))

	ctx = wrap.WithAction(ctx, types.ActionDatasetAudit)
	for _, issue := range issues {
		p.log.Warn(ctx, "dataset inconsistency", "detail", issue)
	}
}

func (p *Provider) set(s models.State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()

	metrics.SetDatasetState(s.Status.String())
}
