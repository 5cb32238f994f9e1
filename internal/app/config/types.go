package config

type (
	InternalConfig struct {
		App App
		EMR EMR
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		ShutdownTimeout int
		MaxRequests     int
	}

	// EMR holds the identity and endpoints used against the clinical-data
	// vendor. PrivateKeyPEM is PKCS#8 PEM-armored RSA key material.
	EMR struct {
		ClientID             string
		TokenEndpoint        string
		BaseURL              string
		PrivateKeyPEM        string
		JWTExpirationSeconds int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
