// Copyright 2026 Atrium Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package recruit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/atriumlabs/converso/core"
	"github.com/atriumlabs/converso/extract"
)

// poolWidth is the fixed number of CVs screened concurrently.
const poolWidth = 5

// Pool fans CV screening out over a fixed-width worker pool. Every leaf
// document yields exactly one result; one bad CV never affects the rest.
type Pool struct {
	screener *Screener
	pool     *ants.Pool
	logger   *slog.Logger
}

// NewPool creates a screening pool around the given screener.
func NewPool(screener *Screener, logger *slog.Logger) (*Pool, error) {
	if screener == nil {
		return nil, ErrScreenerRequired
	}
	if logger == nil {
		logger = slog.Default()
	}

	workers, err := ants.NewPool(poolWidth)
	if err != nil {
		return nil, err
	}

	return &Pool{
		screener: screener,
		pool:     workers,
		logger:   logger.With("component", "recruit"),
	}, nil
}

// Run screens every PDF among the inputs, expanding archives recursively
// first. Non-PDF leaves are dropped. Results arrive in completion order,
// one per retained leaf document.
func (p *Pool) Run(ctx context.Context, docs []core.Document, jobTitle, jobDescription string) ([]*core.ScreeningResult, error) {
	expanded, err := extract.ExpandArchives(docs)
	if err != nil {
		return nil, err
	}

	var leaves []core.Document
	for _, doc := range expanded {
		if doc.Type != core.DocumentTypePDF {
			p.logger.Debug("skipping non-PDF input", "name", doc.Name)
			continue
		}
		leaves = append(leaves, doc)
	}
	if len(leaves) == 0 {
		return nil, nil
	}

	p.logger.Info("screening CVs", "documents", len(leaves), "workers", poolWidth)

	resultCh := make(chan *core.ScreeningResult, len(leaves))
	var wg sync.WaitGroup

	for _, doc := range leaves {
		doc := doc
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					p.logger.Error("screening panicked", "document", doc.Name, "panic", r)
					resultCh <- failedResult(doc.Name, fmt.Sprintf("screening panicked: %v", r), "")
				}
			}()
			resultCh <- p.screener.Screen(ctx, doc, jobTitle, jobDescription)
		})
		if submitErr != nil {
			wg.Done()
			resultCh <- failedResult(doc.Name, fmt.Sprintf("submitting task: %v", submitErr), "")
		}
	}

	wg.Wait()
	close(resultCh)

	results := make([]*core.ScreeningResult, 0, len(leaves))
	for result := range resultCh {
		results = append(results, result)
	}
	return results, nil
}

// Release shuts down the worker pool. The pool must not be used after.
func (p *Pool) Release() {
	p.pool.Release()
}
