package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"

	"github.com/gdg-garage/hotel-registration-api/internal/models"
)

// discordClient reads the signed-in user's data with an OAuth client.
type discordClient struct {
	http *http.Client
	base string
}

type discordProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

type discordGuild struct {
	ID string `json:"id"`
}

func (c *discordClient) get(path string, v any) error {
	resp, err := c.http.Get(c.base + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("discord %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode discord %s: %w", path, err)
	}
	return nil
}

func (c *discordClient) memberOf(guildID string) (bool, error) {
	var guilds []discordGuild
	if err := c.get("/users/@me/guilds", &guilds); err != nil {
		return false, err
	}
	return slices.ContainsFunc(guilds, func(g discordGuild) bool { return g.ID == guildID }), nil
}

func (c *discordClient) profile() (discordProfile, error) {
	var p discordProfile
	err := c.get("/users/@me", &p)
	return p, err
}

// upsertStaff refreshes the staff member behind a Discord account, creating
// it on first sign-in.
func (h *AuthHandler) upsertStaff(ctx context.Context, p discordProfile) (models.Staff, error) {
	var staff models.Staff
	db := h.db.WithContext(ctx)
	if err := db.FirstOrInit(&staff, models.Staff{DiscordID: p.ID}).Error; err != nil {
		return models.Staff{}, err
	}
	staff.Username = p.Username
	staff.Email = p.Email
	staff.Avatar = p.Avatar
	if err := db.Save(&staff).Error; err != nil {
		return models.Staff{}, err
	}
	return staff, nil
}
