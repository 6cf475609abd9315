package geo

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const agencyGeoKey = "alacarte:agencies:geo"

// RedisLocator keeps the agency index in a redis geo set so several
// processes can share one index. Implements Locator.
type RedisLocator struct {
	client *redis.Client
}

func NewRedisLocator(client *redis.Client) *RedisLocator {
	return &RedisLocator{client: client}
}

// Ping verifies the connection.
func (l *RedisLocator) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

// Add indexes an agency's location under its ID.
func (l *RedisLocator) Add(ctx context.Context, agencyID string, loc Location) error {
	err := l.client.GeoAdd(ctx, agencyGeoKey, &redis.GeoLocation{
		Name:      agencyID,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}).Err()
	if err != nil {
		return fmt.Errorf("indexing agency %s: %w", agencyID, err)
	}
	return nil
}

// Remove drops an agency from the index.
func (l *RedisLocator) Remove(ctx context.Context, agencyID string) error {
	if err := l.client.ZRem(ctx, agencyGeoKey, agencyID).Err(); err != nil {
		return fmt.Errorf("removing agency %s from index: %w", agencyID, err)
	}
	return nil
}

func (l *RedisLocator) FindNearby(ctx context.Context, origin Location, radiusMiles float64, limit int) ([]Nearby, error) {
	results, err := l.client.GeoRadius(ctx, agencyGeoKey, origin.Longitude, origin.Latitude,
		&redis.GeoRadiusQuery{
			Radius:   radiusMiles,
			Unit:     "mi",
			WithDist: true,
			Count:    limit,
			Sort:     "ASC",
		}).Result()
	if err != nil {
		return nil, fmt.Errorf("querying agency index: %w", err)
	}

	hits := make([]Nearby, 0, len(results))
	for _, loc := range results {
		hits = append(hits, Nearby{AgencyID: loc.Name, DistanceMiles: loc.Dist})
	}
	return hits, nil
}
