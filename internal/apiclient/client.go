// Package apiclient simulates the remote inventory API the dashboard loads
// its collections from. Every fetch waits a randomized latency window and
// honors context cancellation, so callers exercise the same timeout paths
// they would against a real backend.
package apiclient

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"inventar.org/internal/inventory"
)

const (
	minLatency = 300 * time.Millisecond
	maxLatency = 500 * time.Millisecond
)

// Client serves copies of a fixed dataset after a simulated network delay.
type Client struct {
	data    inventory.State
	rng     *rand.Rand
	latency func() time.Duration
}

// Option configures Client construction.
type Option func(*Client)

// WithLatency overrides the delay function (tests pass a zero delay).
func WithLatency(fn func() time.Duration) Option {
	return func(c *Client) {
		if fn != nil {
			c.latency = fn
		}
	}
}

// New builds a client over the given dataset.
func New(data inventory.State, opts ...Option) *Client {
	c := &Client{
		data: data,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	c.latency = func() time.Duration {
		return minLatency + time.Duration(c.rng.Int63n(int64(maxLatency-minLatency)))
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) wait(ctx context.Context) error {
	timer := time.NewTimer(c.latency())
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FetchAssets returns all assets ordered by id.
func (c *Client) FetchAssets(ctx context.Context) ([]inventory.Asset, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]inventory.Asset, 0, len(c.data.Assets))
	for _, a := range c.data.Assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FetchLicenses returns all master licenses and their seats ordered by id.
func (c *Client) FetchLicenses(ctx context.Context) ([]inventory.MasterLicense, []inventory.LicenseSeat, error) {
	if err := c.wait(ctx); err != nil {
		return nil, nil, err
	}
	licenses := make([]inventory.MasterLicense, 0, len(c.data.MasterLicenses))
	for _, l := range c.data.MasterLicenses {
		licenses = append(licenses, l)
	}
	sort.Slice(licenses, func(i, j int) bool { return licenses[i].ID < licenses[j].ID })

	seats := make([]inventory.LicenseSeat, 0, len(c.data.LicenseSeats))
	for _, s := range c.data.LicenseSeats {
		seats = append(seats, s)
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i].ID < seats[j].ID })
	return licenses, seats, nil
}

// FetchAccessories returns all accessories ordered by id.
func (c *Client) FetchAccessories(ctx context.Context) ([]inventory.Accessory, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]inventory.Accessory, 0, len(c.data.Accessories))
	for _, a := range c.data.Accessories {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FetchComponents returns all hardware components ordered by id.
func (c *Client) FetchComponents(ctx context.Context) ([]inventory.HardwareComponent, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]inventory.HardwareComponent, 0, len(c.data.Components))
	for _, comp := range c.data.Components {
		out = append(out, comp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FetchProcurement returns all procurement batches ordered by id.
func (c *Client) FetchProcurement(ctx context.Context) ([]inventory.ProcurementBatch, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]inventory.ProcurementBatch, 0, len(c.data.ProcurementBatches))
	for _, b := range c.data.ProcurementBatches {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// WithTimeout derives a context bounded to the worst-case fetch latency plus
// headroom, for callers that want a default deadline.
func WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, maxLatency+200*time.Millisecond)
}
