package model

// ================ Config ================
type SessionConfig struct {
	TTL     string `envconfig:"SESSION_TTL" default:"30m"`
	History struct {
		MaxTurns int `envconfig:"SESSION_HISTORY_MAX_TURNS" default:"6"`
	}
}

type GenerationModelConfig struct {
	Model          string  `envconfig:"GENERATION_MODEL" default:"gemini-2.5-flash"`
	MaxTokens      int     `envconfig:"GENERATION_MAX_TOKENS" default:"1000"`
	Temperature    float32 `envconfig:"GENERATION_TEMPERATURE" default:"0.4"`
	TimeoutSeconds int     `envconfig:"GENERATION_TIMEOUT_SECONDS" default:"10"`
}

type PromptConfig struct {
	LenderName  string `envconfig:"PROMPT_LENDER_NAME" default:"Tata Capital"`
	ProductName string `envconfig:"PROMPT_PRODUCT_NAME" default:"personal loan"`
}

// PolicyConfig carries the underwriting policy knobs. The defaults encode
// the production rules: 700 minimum score, 2x limit hard cap, EMI at most
// half the verified salary, 14% p.a. fallback rate.
type PolicyConfig struct {
	MinCreditScore      int     `envconfig:"POLICY_MIN_CREDIT_SCORE" default:"700"`
	LimitMultiplier     float64 `envconfig:"POLICY_LIMIT_MULTIPLIER" default:"2"`
	EMISalaryRatio      float64 `envconfig:"POLICY_EMI_SALARY_RATIO" default:"0.5"`
	DefaultAnnualRate   float64 `envconfig:"POLICY_DEFAULT_ANNUAL_RATE" default:"14.0"`
	DefaultTenureMonths int     `envconfig:"POLICY_DEFAULT_TENURE_MONTHS" default:"24"`
	MinVerifiedSalary   float64 `envconfig:"POLICY_MIN_VERIFIED_SALARY" default:"30000"`
}

type SanctionConfig struct {
	OutputDir        string  `envconfig:"SANCTION_OUTPUT_DIR" default:"sanction_letters"`
	ValidityDays     int     `envconfig:"SANCTION_VALIDITY_DAYS" default:"30"`
	ProcessingFeePct float64 `envconfig:"SANCTION_PROCESSING_FEE_PCT" default:"1.5"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8000"`
}
