package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emilianohg/appart/internal/models"
)

// The opt* helpers return nil for flags the user did not set, which maps
// directly onto the store's partial-update patches.

func optString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func optFloat(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

func optInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func optBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func optPropertyType(cmd *cobra.Command, name string) (*models.PropertyType, error) {
	s := optString(cmd, name)
	if s == nil {
		return nil, nil
	}
	t, ok := models.ParsePropertyType(*s)
	if !ok {
		return nil, fmt.Errorf("unknown property type %q (expected apartment, house or land)", *s)
	}
	return &t, nil
}

func optStage(cmd *cobra.Command, name string) (*models.Stage, error) {
	s := optString(cmd, name)
	if s == nil {
		return nil, nil
	}
	return parseStage(*s)
}

func parseStage(s string) (*models.Stage, error) {
	st, ok := models.ParseStage(s)
	if !ok {
		return nil, fmt.Errorf("unknown stage %q", s)
	}
	return &st, nil
}

func optPriority(cmd *cobra.Command, name string) *models.Priority {
	s := optString(cmd, name)
	if s == nil {
		return nil
	}
	p := models.Priority(*s)
	return &p
}

func optApproval(cmd *cobra.Command, name string) *models.ApprovalStatus {
	s := optString(cmd, name)
	if s == nil {
		return nil
	}
	a := models.ApprovalStatus(*s)
	return &a
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
