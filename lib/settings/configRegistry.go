package settings

const (
	IP   = "ip"
	Port = "port"

	DataRoot        = "dataRoot"
	ScratchDocument = "scratchDocument"

	DBSettingsFilename = "dbSettings.filename"

	TypographyScaleBase  = "typography.scaleBase"
	TypographyScaleRatio = "typography.scaleRatio"
	AccentColor          = "accentColor"

	Loglevel = "loglevel"
)
