/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package brand handles brand record management operations.
package brand

import (
	"errors"
	"strings"
	"time"

	"github.com/domocarroll/subfracture-v3/internal/stream"
	serverconst "github.com/domocarroll/subfracture-v3/internal/system/constants"
	"github.com/domocarroll/subfracture-v3/internal/system/error/serviceerror"
	"github.com/domocarroll/subfracture-v3/internal/system/log"
	"github.com/domocarroll/subfracture-v3/internal/system/utils"
)

const loggerComponentNameService = "BrandService"

// Weights for blending contributed signal confidences into signal strength.
const (
	existingSignalWeight = 0.7
	newSignalWeight      = 0.3
	coherenceNudge       = 0.05
)

// BrandServiceInterface defines the interface for brand service operations.
type BrandServiceInterface interface {
	CreateBrand(request BrandRequest) (Brand, *serviceerror.ServiceError)
	GetBrand(id string) (Brand, *serviceerror.ServiceError)
	GetBrandList(limit, offset int) (*BrandListResponse, *serviceerror.ServiceError)
	EvolveDimension(brandID string, request EvolveDimensionRequest) (
		*EvolveDimensionResponse, *serviceerror.ServiceError)
	CreateSnapshot(brandID string, request SnapshotRequest) (Snapshot, *serviceerror.ServiceError)
	DeleteBrand(id string) *serviceerror.ServiceError
}

// brandService provides brand management operations.
type brandService struct {
	store  brandStoreInterface
	broker *stream.Broker
}

// newBrandService creates a new instance of brandService.
func newBrandService(store brandStoreInterface, broker *stream.Broker) BrandServiceInterface {
	return &brandService{
		store:  store,
		broker: broker,
	}
}

// CreateBrand creates a new brand, seeding the default dimension set when
// the request does not supply one, and records an initial snapshot.
func (bs *brandService) CreateBrand(request BrandRequest) (Brand, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))
	logger.Debug("Creating brand", log.String("name", request.Name))

	if strings.TrimSpace(request.Name) == "" {
		return Brand{}, &ErrorInvalidRequestFormat
	}

	conflict, err := bs.store.CheckBrandNameConflict(request.Name)
	if err != nil {
		logger.Error("Failed to check brand name conflict", log.Error(err))
		return Brand{}, &ErrorInternalServerError
	}
	if conflict {
		return Brand{}, &ErrorBrandNameConflict
	}

	dimensions := request.InitialDimensions
	if len(dimensions) == 0 {
		dimensions = defaultDimensions()
	}

	now := time.Now().UTC()
	b := Brand{
		ID:             utils.GenerateUUID(),
		Name:           request.Name,
		Description:    request.Description,
		Dimensions:     dimensions,
		CognitiveState: defaultCognitiveState(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	snapshot := Snapshot{
		ID:        utils.GenerateUUID(),
		BrandID:   b.ID,
		Name:      "initial_state",
		Context:   "Brand created",
		State:     b,
		CreatedAt: now,
	}
	if err := bs.store.CreateBrand(b, snapshot); err != nil {
		logger.Error("Failed to create brand", log.Error(err))
		return Brand{}, &ErrorInternalServerError
	}

	logger.Debug("Successfully created brand", log.String(log.LoggerKeyBrandID, b.ID))
	return b, nil
}

// GetBrand retrieves a brand by ID.
func (bs *brandService) GetBrand(id string) (Brand, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	b, err := bs.store.GetBrand(id)
	if err != nil {
		if errors.Is(err, ErrBrandNotFound) {
			return Brand{}, &ErrorBrandNotFound
		}
		logger.Error("Failed to get brand", log.Error(err))
		return Brand{}, &ErrorInternalServerError
	}

	return b, nil
}

// GetBrandList retrieves a paginated list of active brands.
func (bs *brandService) GetBrandList(limit, offset int) (*BrandListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if svcErr := validatePaginationParams(limit, offset); svcErr != nil {
		return nil, svcErr
	}

	totalCount, err := bs.store.GetBrandListCount()
	if err != nil {
		logger.Error("Failed to get brand count", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	brands, err := bs.store.GetBrandList(limit, offset)
	if err != nil {
		logger.Error("Failed to list brands", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &BrandListResponse{
		TotalResults: totalCount,
		StartIndex:   offset + 1,
		Count:        len(brands),
		Brands:       brands,
	}, nil
}

// EvolveDimension evolves a named dimension of the brand. Explicit strength
// and coherence overrides are applied first; contributed signals then blend
// into signal strength at a 70/30 ratio and nudge coherence upward.
func (bs *brandService) EvolveDimension(
	brandID string, request EvolveDimensionRequest,
) (*EvolveDimensionResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))
	logger.Debug("Evolving brand dimension",
		log.String(log.LoggerKeyBrandID, brandID), log.String("dimension", request.DimensionName))

	if strings.TrimSpace(request.DimensionName) == "" {
		return nil, &ErrorInvalidRequestFormat
	}

	b, err := bs.store.GetBrand(brandID)
	if err != nil {
		if errors.Is(err, ErrBrandNotFound) {
			return nil, &ErrorBrandNotFound
		}
		logger.Error("Failed to get brand", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	index := -1
	for i, dim := range b.Dimensions {
		if dim.Name == request.DimensionName {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, &ErrorDimensionNotFound
	}

	original := b.Dimensions[index]
	evolved := original

	if request.SignalStrength != nil {
		evolved.SignalStrength = *request.SignalStrength
	}
	if request.Coherence != nil {
		evolved.Coherence = *request.Coherence
	}

	if len(request.Signals) > 0 {
		var sum float64
		counted := 0
		for _, signal := range request.Signals {
			if signal.Confidence > 0 {
				sum += signal.Confidence
				counted++
			}
		}
		if counted > 0 {
			avgConfidence := sum / float64(counted)
			evolved.SignalStrength = evolved.SignalStrength*existingSignalWeight + avgConfidence*newSignalWeight
			evolved.Coherence = evolved.Coherence + coherenceNudge
			if evolved.Coherence > 1.0 {
				evolved.Coherence = 1.0
			}
		}
	}

	b.Dimensions[index] = evolved
	b.UpdatedAt = time.Now().UTC()

	if err := bs.store.UpdateBrand(b); err != nil {
		if errors.Is(err, ErrBrandNotFound) {
			return nil, &ErrorBrandNotFound
		}
		logger.Error("Failed to update brand", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	if bs.broker != nil {
		bs.broker.Publish(stream.NewEvent(stream.EventDimensionUpdated, brandID, map[string]interface{}{
			"dimension_name":  evolved.Name,
			"signal_strength": evolved.SignalStrength,
			"coherence":       evolved.Coherence,
		}))
	}

	return &EvolveDimensionResponse{
		Brand: b,
		Metrics: EvolutionMetrics{
			SignalStrengthChange: evolved.SignalStrength - original.SignalStrength,
			CoherenceChange:      evolved.Coherence - original.Coherence,
			SignalsProcessed:     len(request.Signals),
			EvolutionReason:      request.EvolutionReason,
		},
	}, nil
}

// CreateSnapshot captures the brand's current state under a named snapshot.
func (bs *brandService) CreateSnapshot(
	brandID string, request SnapshotRequest,
) (Snapshot, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))

	if strings.TrimSpace(request.Name) == "" {
		return Snapshot{}, &ErrorInvalidRequestFormat
	}

	b, err := bs.store.GetBrand(brandID)
	if err != nil {
		if errors.Is(err, ErrBrandNotFound) {
			return Snapshot{}, &ErrorBrandNotFound
		}
		logger.Error("Failed to get brand", log.Error(err))
		return Snapshot{}, &ErrorInternalServerError
	}

	snapshot := Snapshot{
		ID:        utils.GenerateUUID(),
		BrandID:   brandID,
		Name:      request.Name,
		Context:   request.Context,
		State:     b,
		CreatedBy: request.CreatedBy,
		CreatedAt: time.Now().UTC(),
	}

	if err := bs.store.CreateSnapshot(snapshot); err != nil {
		logger.Error("Failed to create snapshot", log.Error(err))
		return Snapshot{}, &ErrorInternalServerError
	}

	logger.Debug("Successfully created snapshot",
		log.String(log.LoggerKeyBrandID, brandID), log.String("snapshotId", snapshot.ID))
	return snapshot, nil
}

// DeleteBrand soft deletes a brand.
func (bs *brandService) DeleteBrand(id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameService))
	logger.Debug("Deleting brand", log.String(log.LoggerKeyBrandID, id))

	if err := bs.store.DeleteBrand(id); err != nil {
		if errors.Is(err, ErrBrandNotFound) {
			return &ErrorBrandNotFound
		}
		logger.Error("Failed to delete brand", log.Error(err))
		return &ErrorInternalServerError
	}

	return nil
}

// validatePaginationParams validates pagination parameters.
func validatePaginationParams(limit, offset int) *serviceerror.ServiceError {
	if limit < 1 || limit > serverconst.MaxPageSize {
		return &ErrorInvalidLimit
	}
	if offset < 0 {
		return &ErrorInvalidOffset
	}
	return nil
}
