package dispatch

// Every dispatch outcome is a response string delivered back through the
// gateway; nothing in this package surfaces an error to the caller for a
// malformed invocation. These are the fixed texts.
const (
	responsePong = "pong"

	responsePermissionDenied = "You do not have permission to use this command " +
		"and it has been reported to the local authorities. " +
		"Spend your last moments repenting."
	responseHostRoleNotConfiguredFmt = "No %q role is configured for this server, " +
		"so this command is unavailable."
	responsePermissionCheckFailed = "Could not verify your permissions, try again later."

	responseInvalidCommand        = "Invalid command"
	responseInvalidTeamSuboption  = "Invalid team suboption"
	responseInvalidScoreSuboption = "Invalid team->score suboption"
	responseNoMember              = "No member for interaction"

	responseInvalidUserArg = "Please provide a valid user"

	responseRenameInvalidArgs = "Failed to rename team, invalid argument or channel id"
	responseRenameNoTeam      = "Failed to rename team, could not find team"

	responseRecolorInvalidArgs = "Failed to recolor team, invalid argument or channel id"
	responseRecolorOutOfRange  = "Failed to recolor team, color components must be between 0 and 255"
	responseRecolorNoTeam      = "Failed to recolor team, could not find team"

	responseCreateInvalidArgs = "Failed to create team, unknown channel or role"
	responseCreated           = "Created new team"

	responseAdjustInvalidArg = "Adjustment wrong type, could not adjust"
	responseAdjustNoTeam     = "Missing team, could not adjust"

	responseNoTeams = "No teams created"
)
