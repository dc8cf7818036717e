package model

// GuildID identifies a community (server/guild) on the chat platform
type GuildID string

// ChannelID identifies a channel within a guild
type ChannelID string

// RoleID identifies a permission group (role) within a guild
type RoleID string

// UserID identifies a platform user
type UserID string
