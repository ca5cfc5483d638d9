/*
Copyright 2023 The sftpgo-server-operator Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

// SftpgoConfiguration mirrors the sftpgo configuration file. Every field set
// here is handed to the server process as SFTPGO__ environment variables, so
// the tree intentionally follows the upstream configuration layout instead of
// inventing an abstraction over it.
type SftpgoConfiguration struct {
	// +optional
	Common *CommonConfiguration `json:"common,omitempty"`
	// +optional
	Acme *AcmeConfiguration `json:"acme,omitempty"`
	// +optional
	Sftpd *SftpdConfiguration `json:"sftpd,omitempty"`
	// +optional
	Ftpd *FtpdConfiguration `json:"ftpd,omitempty"`
	// +optional
	Webdavd *WebdavdConfiguration `json:"webdavd,omitempty"`
	// +optional
	DataProvider *DataProviderConfiguration `json:"data_provider,omitempty"`
	// +optional
	Httpd *HttpdConfiguration `json:"httpd,omitempty"`
	// +optional
	Telemetry *TelemetryConfiguration `json:"telemetry,omitempty"`
	// +optional
	HTTP *HTTPClientConfiguration `json:"http,omitempty"`
	// +optional
	Command *CommandConfiguration `json:"command,omitempty"`
	// +optional
	Kms *KmsConfiguration `json:"kms,omitempty"`
	// +optional
	Mfa *MfaConfiguration `json:"mfa,omitempty"`
	// +optional
	Smtp *SmtpConfiguration `json:"smtp,omitempty"`
}

// UploadMode controls how uploaded files reach their final location.
// +kubebuilder:validation:Enum=Standard;Atomic;AtomicWithResumeSupport
type UploadMode string

const (
	UploadModeStandard                UploadMode = "Standard"
	UploadModeAtomic                  UploadMode = "Atomic"
	UploadModeAtomicWithResumeSupport UploadMode = "AtomicWithResumeSupport"
)

type CommonConfiguration struct {
	// +optional
	IdleTimeout *int64 `json:"idle_timeout,omitempty"`
	// +optional
	UploadMode *UploadMode `json:"upload_mode,omitempty"`
	// +optional
	Actions *ProtocolActions `json:"actions,omitempty"`
	// +optional
	SetstatMode *int64 `json:"setstat_mode,omitempty"`
	// +optional
	RenameMode *int64 `json:"rename_mode,omitempty"`
	// +optional
	TempPath string `json:"temp_path,omitempty"`
	// +optional
	ProxyProtocol *int64 `json:"proxy_protocol,omitempty"`
	// +optional
	ProxyAllowed []string `json:"proxy_allowed,omitempty"`
	// +optional
	ProxySkipped []string `json:"proxy_skipped,omitempty"`
	// +optional
	StartupHook string `json:"startup_hook,omitempty"`
	// +optional
	PostConnectHook string `json:"post_connect_hook,omitempty"`
	// +optional
	PostDisconnectHook string `json:"post_disconnect_hook,omitempty"`
	// +optional
	DataRetentionHook string `json:"data_retention_hook,omitempty"`
	// +optional
	MaxTotalConnections *int64 `json:"max_total_connections,omitempty"`
	// +optional
	MaxPerHostConnections *int64 `json:"max_per_host_connections,omitempty"`
	// +optional
	AllowlistStatus *int64 `json:"allowlist_status,omitempty"`
	// +optional
	AllowSelfConnections *int64 `json:"allow_self_connections,omitempty"`
	// +optional
	Defender *DefenderConfiguration `json:"defender,omitempty"`
	// +optional
	RateLimiters []RateLimiter `json:"rate_limiters,omitempty"`
}

type ProtocolActions struct {
	// +optional
	ExecuteOn []string `json:"execute_on,omitempty"`
	// +optional
	ExecuteSync []string `json:"execute_sync,omitempty"`
	// +optional
	Hook string `json:"hook,omitempty"`
}

type DefenderConfiguration struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`
	// +optional
	Driver string `json:"driver,omitempty"`
	// +optional
	BanTime *int64 `json:"ban_time,omitempty"`
	// +optional
	BanTimeIncrement *int64 `json:"ban_time_increment,omitempty"`
	// +optional
	Threshold *int64 `json:"threshold,omitempty"`
	// +optional
	ScoreInvalid *int64 `json:"score_invalid,omitempty"`
	// +optional
	ScoreValid *int64 `json:"score_valid,omitempty"`
	// +optional
	ScoreLimitExceeded *int64 `json:"score_limit_exceeded,omitempty"`
	// +optional
	ScoreNoAuth *int64 `json:"score_no_auth,omitempty"`
	// +optional
	ObservationTime *int64 `json:"observation_time,omitempty"`
	// +optional
	EntriesSoftLimit *int64 `json:"entries_soft_limit,omitempty"`
	// +optional
	EntriesHardLimit *int64 `json:"entries_hard_limit,omitempty"`
}

type RateLimiter struct {
	// +optional
	Average *int64 `json:"average,omitempty"`
	// +optional
	Period *int64 `json:"period,omitempty"`
	// +optional
	Burst *int64 `json:"burst,omitempty"`
	// +optional
	Type *int64 `json:"type,omitempty"`
	// +optional
	Protocols []string `json:"protocols,omitempty"`
	// +optional
	GenerateDefenderEvents *bool `json:"generate_defender_events,omitempty"`
	// +optional
	EntriesSoftLimit *int64 `json:"entries_soft_limit,omitempty"`
	// +optional
	EntriesHardLimit *int64 `json:"entries_hard_limit,omitempty"`
}

type AcmeConfiguration struct {
	// +optional
	Domains []string `json:"domains,omitempty"`
	// +optional
	Email string `json:"email,omitempty"`
	// +optional
	KeyType string `json:"key_type,omitempty"`
	// +optional
	CertsPath string `json:"certs_path,omitempty"`
	// +optional
	CaEndpoint string `json:"ca_endpoint,omitempty"`
	// +optional
	RenewDays *int64 `json:"renew_days,omitempty"`
	// +optional
	Http01Challenge *Http01Challenge `json:"http01_challenge,omitempty"`
	// +optional
	TlsAlpn01Challenge *TlsAlpn01Challenge `json:"tls_alpn01_challenge,omitempty"`
}

type Http01Challenge struct {
	// +optional
	Port *int64 `json:"port,omitempty"`
	// +optional
	ProxyHeader string `json:"proxy_header,omitempty"`
	// +optional
	Webroot string `json:"webroot,omitempty"`
}

type TlsAlpn01Challenge struct {
	// +optional
	Port *int64 `json:"port,omitempty"`
}

type SftpdConfiguration struct {
	// +optional
	Bindings []SftpdBinding `json:"bindings,omitempty"`
	// +optional
	MaxAuthTries *int64 `json:"max_auth_tries,omitempty"`
	// +optional
	Banner string `json:"banner,omitempty"`
	// +optional
	HostKeys []string `json:"host_keys,omitempty"`
	// +optional
	HostCertificates []string `json:"host_certificates,omitempty"`
	// +optional
	HostKeyAlgorithms []string `json:"host_key_algorithms,omitempty"`
	// +optional
	Moduli []string `json:"moduli,omitempty"`
	// +optional
	KexAlgorithms []string `json:"kex_algorithms,omitempty"`
	// +optional
	Ciphers []string `json:"ciphers,omitempty"`
	// +optional
	Macs []string `json:"macs,omitempty"`
	// +optional
	TrustedUserCaKeys []string `json:"trusted_user_ca_keys,omitempty"`
	// +optional
	RevokedUserCertsFile string `json:"revoked_user_certs_file,omitempty"`
	// +optional
	LoginBannerFile string `json:"login_banner_file,omitempty"`
	// +optional
	EnabledSshCommands []string `json:"enabled_ssh_commands,omitempty"`
	// +optional
	KeyboardInteractiveAuthentication *bool `json:"keyboard_interactive_authentication,omitempty"`
	// +optional
	KeyboardInteractiveAuthHook string `json:"keyboard_interactive_auth_hook,omitempty"`
	// +optional
	PasswordAuthentication *bool `json:"password_authentication,omitempty"`
	// +optional
	FolderPrefix string `json:"folder_prefix,omitempty"`
}

type SftpdBinding struct {
	// +optional
	Port *int32 `json:"port,omitempty"`
	// +optional
	Address string `json:"address,omitempty"`
	// +optional
	ApplyProxyConfig *bool `json:"apply_proxy_config,omitempty"`
}

type FtpdConfiguration struct {
	// +optional
	Bindings []FtpdBinding `json:"bindings,omitempty"`
	// +optional
	Banner string `json:"banner,omitempty"`
	// +optional
	BannerFile string `json:"banner_file,omitempty"`
	// +optional
	ActiveTransfersPortNon20 *bool `json:"active_transfers_port_non_20,omitempty"`
	// +optional
	PassivePortRange *PassivePortRange `json:"passive_port_range,omitempty"`
	// +optional
	DisableActiveMode *bool `json:"disable_active_mode,omitempty"`
	// +optional
	EnableSite *bool `json:"enable_site,omitempty"`
	// +optional
	HashSupport *int64 `json:"hash_support,omitempty"`
	// +optional
	CombineSupport *int64 `json:"combine_support,omitempty"`
	// +optional
	CertificateFile string `json:"certificate_file,omitempty"`
	// +optional
	CertificateKeyFile string `json:"certificate_key_file,omitempty"`
	// +optional
	CaCertificates []string `json:"ca_certificates,omitempty"`
	// +optional
	CaRevocationLists []string `json:"ca_revocation_lists,omitempty"`
}

type FtpdBinding struct {
	// +optional
	Port *int32 `json:"port,omitempty"`
	// +optional
	Address string `json:"address,omitempty"`
	// +optional
	ApplyProxyConfig *bool `json:"apply_proxy_config,omitempty"`
	// +optional
	TlsMode *int64 `json:"tls_mode,omitempty"`
	// +optional
	CertificateFile string `json:"certificate_file,omitempty"`
	// +optional
	CertificateKeyFile string `json:"certificate_key_file,omitempty"`
	// +optional
	MinTlsVersion *int64 `json:"min_tls_version,omitempty"`
	// +optional
	ForcePassiveIP string `json:"force_passive_ip,omitempty"`
	// +optional
	PassiveIPOverrides []FtpdPassiveIPOverride `json:"passive_ip_overrides,omitempty"`
	// +optional
	PassiveHost string `json:"passive_host,omitempty"`
	// +optional
	ClientAuthType *int64 `json:"client_auth_type,omitempty"`
	// +optional
	TlsCipherSuites []string `json:"tls_cipher_suites,omitempty"`
	// +optional
	PassiveConnectionsSecurity *int64 `json:"passive_connections_security,omitempty"`
	// +optional
	ActiveConnectionsSecurity *int64 `json:"active_connections_security,omitempty"`
	// +optional
	Debug *bool `json:"debug,omitempty"`
}

type FtpdPassiveIPOverride struct {
	// +optional
	Networks []string `json:"networks,omitempty"`
	// +optional
	IP string `json:"ip,omitempty"`
}

type PassivePortRange struct {
	// +optional
	Start *int32 `json:"start,omitempty"`
	// +optional
	End *int32 `json:"end,omitempty"`
}

type WebdavdConfiguration struct {
	// +optional
	Bindings []WebdavdBinding `json:"bindings,omitempty"`
	// +optional
	CertificateFile string `json:"certificate_file,omitempty"`
	// +optional
	CertificateKeyFile string `json:"certificate_key_file,omitempty"`
	// +optional
	CaCertificates []string `json:"ca_certificates,omitempty"`
	// +optional
	CaRevocationLists []string `json:"ca_revocation_lists,omitempty"`
	// +optional
	Cors *CorsConfiguration `json:"cors,omitempty"`
	// +optional
	Cache *WebdavdCache `json:"cache,omitempty"`
}

type WebdavdBinding struct {
	// +optional
	Port *int32 `json:"port,omitempty"`
	// +optional
	Address string `json:"address,omitempty"`
	// +optional
	EnableHttps *bool `json:"enable_https,omitempty"`
	// +optional
	CertificateFile string `json:"certificate_file,omitempty"`
	// +optional
	CertificateKeyFile string `json:"certificate_key_file,omitempty"`
	// +optional
	MinTlsVersion *int64 `json:"min_tls_version,omitempty"`
	// +optional
	ClientAuthType *int64 `json:"client_auth_type,omitempty"`
	// +optional
	TlsCipherSuites []string `json:"tls_cipher_suites,omitempty"`
	// +optional
	Prefix string `json:"prefix,omitempty"`
	// +optional
	ProxyAllowed []string `json:"proxy_allowed,omitempty"`
	// +optional
	ClientIPProxyHeader string `json:"client_ip_proxy_header,omitempty"`
	// +optional
	ClientIPHeaderDepth *int64 `json:"client_ip_header_depth,omitempty"`
	// +optional
	DisableWwwAuthHeader *bool `json:"disable_www_auth_header,omitempty"`
}

type CorsConfiguration struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`
	// +optional
	AllowedOrigins []string `json:"allowed_origins,omitempty"`
	// +optional
	AllowedMethods []string `json:"allowed_methods,omitempty"`
	// +optional
	AllowedHeaders []string `json:"allowed_headers,omitempty"`
	// +optional
	ExposedHeaders []string `json:"exposed_headers,omitempty"`
	// +optional
	AllowCredentials *bool `json:"allow_credentials,omitempty"`
	// +optional
	MaxAge *int64 `json:"max_age,omitempty"`
	// +optional
	OptionsPassthrough *bool `json:"options_passthrough,omitempty"`
	// +optional
	OptionsSuccessStatus *int64 `json:"options_success_status,omitempty"`
	// +optional
	AllowPrivateNetwork *bool `json:"allow_private_network,omitempty"`
}

type WebdavdCache struct {
	// +optional
	Users *WebdavdUsersCache `json:"users,omitempty"`
	// +optional
	MimeTypes *WebdavdMimeCache `json:"mime_types,omitempty"`
}

type WebdavdUsersCache struct {
	// +optional
	ExpirationTime *int64 `json:"expiration_time,omitempty"`
	// +optional
	MaxSize *int64 `json:"max_size,omitempty"`
}

type WebdavdMimeCache struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`
	// +optional
	MaxSize *int64 `json:"max_size,omitempty"`
	// +optional
	CustomMappings []MimeMapping `json:"custom_mappings,omitempty"`
}

type MimeMapping struct {
	Ext  string `json:"ext"`
	Mime string `json:"mime"`
}

// DataProviderActionTarget names an object type data provider actions run for.
// +kubebuilder:validation:Enum=user;folder;group;admin;api_key;share;event_action;event_rule
type DataProviderActionTarget string

// DataProviderActionTrigger names a mutation data provider actions run on.
// +kubebuilder:validation:Enum=add;update;delete
type DataProviderActionTrigger string

type DataProviderConfiguration struct {
	// +optional
	Driver string `json:"driver,omitempty"`
	// +optional
	Name string `json:"name,omitempty"`
	// +optional
	Host string `json:"host,omitempty"`
	// +optional
	Port *int64 `json:"port,omitempty"`
	// +optional
	Username string `json:"username,omitempty"`
	// +optional
	Password string `json:"password,omitempty"`
	// +optional
	Sslmode *int64 `json:"sslmode,omitempty"`
	// +optional
	DisableSni *bool `json:"disable_sni,omitempty"`
	// +optional
	TargetSessionAttrs string `json:"target_session_attrs,omitempty"`
	// +optional
	RootCert string `json:"root_cert,omitempty"`
	// +optional
	ClientCert string `json:"client_cert,omitempty"`
	// +optional
	ClientKey string `json:"client_key,omitempty"`
	// +optional
	ConnectionString string `json:"connection_string,omitempty"`
	// +optional
	SQLTablesPrefix string `json:"sql_tables_prefix,omitempty"`
	// +optional
	TrackQuota *int64 `json:"track_quota,omitempty"`
	// +optional
	DelayedQuotaUpdate *int64 `json:"delayed_quota_update,omitempty"`
	// +optional
	PoolSize *int64 `json:"pool_size,omitempty"`
	// +optional
	UsersBaseDir string `json:"users_base_dir,omitempty"`
	// +optional
	Actions *DataProviderActions `json:"actions,omitempty"`
	// +optional
	ExternalAuthHook string `json:"external_auth_hook,omitempty"`
	// +optional
	ExternalAuthScope *int64 `json:"external_auth_scope,omitempty"`
	// +optional
	PreLoginHook string `json:"pre_login_hook,omitempty"`
	// +optional
	PostLoginHook string `json:"post_login_hook,omitempty"`
	// +optional
	PostLoginScope *int64 `json:"post_login_scope,omitempty"`
	// +optional
	CheckPasswordHook string `json:"check_password_hook,omitempty"`
	// +optional
	CheckPasswordScope *int64 `json:"check_password_scope,omitempty"`
	// +optional
	PasswordHashing *PasswordHashing `json:"password_hashing,omitempty"`
	// +optional
	PasswordValidation *PasswordValidation `json:"password_validation,omitempty"`
	// +optional
	PasswordCaching *bool `json:"password_caching,omitempty"`
	// +optional
	UpdateMode *int64 `json:"update_mode,omitempty"`
	// +optional
	CreateDefaultAdmin *bool `json:"create_default_admin,omitempty"`
	// +optional
	NamingRules *int64 `json:"naming_rules,omitempty"`
	// +optional
	IsShared *int64 `json:"is_shared,omitempty"`
	// +optional
	Node *NodeConfiguration `json:"node,omitempty"`
	// +optional
	BackupsPath string `json:"backups_path,omitempty"`
}

type DataProviderActions struct {
	// +optional
	ExecuteOn []DataProviderActionTrigger `json:"execute_on,omitempty"`
	// +optional
	ExecuteFor []DataProviderActionTarget `json:"execute_for,omitempty"`
	// +optional
	Hook string `json:"hook,omitempty"`
}

type PasswordHashing struct {
	// +optional
	BcryptOptions *BcryptOptions `json:"bcrypt_options,omitempty"`
	// +optional
	Argon2Options *Argon2Options `json:"argon2_options,omitempty"`
	// +optional
	Algo string `json:"algo,omitempty"`
}

type BcryptOptions struct {
	// +optional
	Cost *int64 `json:"cost,omitempty"`
}

type Argon2Options struct {
	// +optional
	Memory *int64 `json:"memory,omitempty"`
	// +optional
	Iterations *int64 `json:"iterations,omitempty"`
	// +optional
	Parallelism *int64 `json:"parallelism,omitempty"`
}

type PasswordValidation struct {
	// +optional
	Admins *PasswordValidationRules `json:"admins,omitempty"`
	// +optional
	Users *PasswordValidationRules `json:"users,omitempty"`
}

type PasswordValidationRules struct {
	// +optional
	MinEntropy *int64 `json:"min_entropy,omitempty"`
}

type NodeConfiguration struct {
	// +optional
	Host string `json:"host,omitempty"`
	// +optional
	Port *int64 `json:"port,omitempty"`
	// +optional
	Proto string `json:"proto,omitempty"`
}

type HttpdConfiguration struct {
	// +optional
	Bindings []HttpdBinding `json:"bindings,omitempty"`
	// +optional
	TemplatesPath string `json:"templates_path,omitempty"`
	// +optional
	StaticFilesPath string `json:"static_files_path,omitempty"`
	// +optional
	OpenapiPath string `json:"openapi_path,omitempty"`
	// +optional
	WebRoot string `json:"web_root,omitempty"`
	// +optional
	CertificateFile string `json:"certificate_file,omitempty"`
	// +optional
	CertificateKeyFile string `json:"certificate_key_file,omitempty"`
	// +optional
	CaCertificates []string `json:"ca_certificates,omitempty"`
	// +optional
	CaRevocationLists []string `json:"ca_revocation_lists,omitempty"`
	// +optional
	SigningPassphrase string `json:"signing_passphrase,omitempty"`
	// +optional
	TokenValidation *int64 `json:"token_validation,omitempty"`
	// +optional
	MaxUploadFileSize *int64 `json:"max_upload_file_size,omitempty"`
	// +optional
	Cors *CorsConfiguration `json:"cors,omitempty"`
	// +optional
	Setup *SetupConfiguration `json:"setup,omitempty"`
	// +optional
	HideSupportLink *bool `json:"hide_support_link,omitempty"`
}

type HttpdBinding struct {
	// +optional
	Port *int32 `json:"port,omitempty"`
	// +optional
	Address string `json:"address,omitempty"`
	// +optional
	EnableWebAdmin *bool `json:"enable_web_admin,omitempty"`
	// +optional
	EnableWebClient *bool `json:"enable_web_client,omitempty"`
	// +optional
	EnableRestAPI *bool `json:"enable_rest_api,omitempty"`
	// +optional
	EnabledLoginMethods *int64 `json:"enabled_login_methods,omitempty"`
	// +optional
	EnableHttps *bool `json:"enable_https,omitempty"`
	// +optional
	CertificateFile string `json:"certificate_file,omitempty"`
	// +optional
	CertificateKeyFile string `json:"certificate_key_file,omitempty"`
	// +optional
	MinTlsVersion *int64 `json:"min_tls_version,omitempty"`
	// +optional
	ClientAuthType *int64 `json:"client_auth_type,omitempty"`
	// +optional
	TlsCipherSuites []string `json:"tls_cipher_suites,omitempty"`
	// +optional
	ProxyAllowed []string `json:"proxy_allowed,omitempty"`
	// +optional
	ClientIPProxyHeader string `json:"client_ip_proxy_header,omitempty"`
	// +optional
	ClientIPHeaderDepth *int64 `json:"client_ip_header_depth,omitempty"`
	// +optional
	HideLoginURL *int64 `json:"hide_login_url,omitempty"`
	// +optional
	RenderOpenapi *bool `json:"render_openapi,omitempty"`
	// +optional
	WebClientIntegrations []WebClientIntegration `json:"web_client_integrations,omitempty"`
	// +optional
	Oidc *OidcConfiguration `json:"oidc,omitempty"`
	// +optional
	Security *SecurityConfiguration `json:"security,omitempty"`
	// +optional
	Branding *BrandingConfiguration `json:"branding,omitempty"`
}

type WebClientIntegration struct {
	FileExtensions []string `json:"file_extensions"`
	URL            string   `json:"url"`
}

type OidcConfiguration struct {
	// +optional
	ClientID string `json:"client_id,omitempty"`
	// +optional
	ClientSecret string `json:"client_secret,omitempty"`
	// +optional
	ConfigURL string `json:"config_url,omitempty"`
	// +optional
	RedirectBaseURL string `json:"redirect_base_url,omitempty"`
	// +optional
	Scopes []string `json:"scopes,omitempty"`
	// +optional
	UsernameField string `json:"username_field,omitempty"`
	// +optional
	RoleField string `json:"role_field,omitempty"`
	// +optional
	ImplicitRoles *bool `json:"implicit_roles,omitempty"`
	// +optional
	CustomFields []string `json:"custom_fields,omitempty"`
	// +optional
	InsecureSkipSignatureCheck *bool `json:"insecure_skip_signature_check,omitempty"`
	// +optional
	Debug *bool `json:"debug,omitempty"`
}

type SecurityConfiguration struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`
	// +optional
	AllowedHosts []string `json:"allowed_hosts,omitempty"`
	// +optional
	AllowedHostsAreRegex *bool `json:"allowed_hosts_are_regex,omitempty"`
	// +optional
	HostsProxyHeaders []string `json:"hosts_proxy_headers,omitempty"`
	// +optional
	HttpsRedirect *bool `json:"https_redirect,omitempty"`
	// +optional
	HttpsHost string `json:"https_host,omitempty"`
	// +optional
	HttpsProxyHeaders []HttpsProxyHeader `json:"https_proxy_headers,omitempty"`
	// +optional
	StsSeconds *int64 `json:"sts_seconds,omitempty"`
	// +optional
	StsIncludeSubdomains *bool `json:"sts_include_subdomains,omitempty"`
	// +optional
	StsPreload *bool `json:"sts_preload,omitempty"`
	// +optional
	ContentTypeNosniff *bool `json:"content_type_nosniff,omitempty"`
	// +optional
	ContentSecurityPolicy string `json:"content_security_policy,omitempty"`
	// +optional
	PermissionsPolicy string `json:"permissions_policy,omitempty"`
	// +optional
	CrossOriginOpenerPolicy string `json:"cross_origin_opener_policy,omitempty"`
	// +optional
	ExpectCtHeader string `json:"expect_ct_header,omitempty"`
}

type HttpsProxyHeader struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type BrandingConfiguration struct {
	// +optional
	WebAdmin *BrandingUnit `json:"web_admin,omitempty"`
	// +optional
	WebClient *BrandingUnit `json:"web_client,omitempty"`
}

type BrandingUnit struct {
	// +optional
	Name string `json:"name,omitempty"`
	// +optional
	ShortName string `json:"short_name,omitempty"`
	// +optional
	FaviconPath string `json:"favicon_path,omitempty"`
	// +optional
	LogoPath string `json:"logo_path,omitempty"`
	// +optional
	LoginImagePath string `json:"login_image_path,omitempty"`
	// +optional
	DisclaimerName string `json:"disclaimer_name,omitempty"`
	// +optional
	DisclaimerPath string `json:"disclaimer_path,omitempty"`
	// +optional
	DefaultCss string `json:"default_css,omitempty"`
	// +optional
	ExtraCss []string `json:"extra_css,omitempty"`
}

type SetupConfiguration struct {
	// +optional
	InstallationCode string `json:"installation_code,omitempty"`
	// +optional
	InstallationCodeHint string `json:"installation_code_hint,omitempty"`
}

type TelemetryConfiguration struct {
	// +optional
	BindPort *int64 `json:"bind_port,omitempty"`
	// +optional
	BindAddress string `json:"bind_address,omitempty"`
	// +optional
	EnableProfiler *bool `json:"enable_profiler,omitempty"`
	// +optional
	AuthUserFile string `json:"auth_user_file,omitempty"`
	// +optional
	CertificateFile string `json:"certificate_file,omitempty"`
	// +optional
	CertificateKeyFile string `json:"certificate_key_file,omitempty"`
	// +optional
	MinTlsVersion *int64 `json:"min_tls_version,omitempty"`
	// +optional
	TlsCipherSuites []string `json:"tls_cipher_suites,omitempty"`
}

type HTTPClientConfiguration struct {
	// +optional
	Timeout *int64 `json:"timeout,omitempty"`
	// +optional
	RetryWaitMin *int64 `json:"retry_wait_min,omitempty"`
	// +optional
	RetryWaitMax *int64 `json:"retry_wait_max,omitempty"`
	// +optional
	RetryMax *int64 `json:"retry_max,omitempty"`
	// +optional
	CaCertificates []string `json:"ca_certificates,omitempty"`
	// +optional
	Certificates []ClientCertificate `json:"certificates,omitempty"`
	// +optional
	SkipTlsVerify *bool `json:"skip_tls_verify,omitempty"`
	// +optional
	Headers []HTTPClientHeader `json:"headers,omitempty"`
}

type ClientCertificate struct {
	Cert string `json:"cert"`
	Key  string `json:"key"`
}

type HTTPClientHeader struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	// +optional
	URL string `json:"url,omitempty"`
}

type CommandConfiguration struct {
	// +optional
	Timeout *int64 `json:"timeout,omitempty"`
	// +optional
	Env []string `json:"env,omitempty"`
	// +optional
	Commands []CommandEntry `json:"commands,omitempty"`
}

type CommandEntry struct {
	Path string `json:"path"`
	// +optional
	Timeout *int64 `json:"timeout,omitempty"`
	// +optional
	Env []string `json:"env,omitempty"`
	// +optional
	Args []string `json:"args,omitempty"`
	// +optional
	Hook string `json:"hook,omitempty"`
}

type KmsConfiguration struct {
	// +optional
	Secrets *KmsSecrets `json:"secrets,omitempty"`
}

type KmsSecrets struct {
	// +optional
	URL string `json:"url,omitempty"`
	// +optional
	MasterKey string `json:"master_key,omitempty"`
	// +optional
	MasterKeyPath string `json:"master_key_path,omitempty"`
}

type MfaConfiguration struct {
	// +optional
	Totp []TotpConfiguration `json:"totp,omitempty"`
}

type TotpConfiguration struct {
	// +optional
	Name string `json:"name,omitempty"`
	// +optional
	Issuer string `json:"issuer,omitempty"`
	// +optional
	Algo string `json:"algo,omitempty"`
}

type SmtpConfiguration struct {
	// +optional
	Host string `json:"host,omitempty"`
	// +optional
	Port *int64 `json:"port,omitempty"`
	// +optional
	From string `json:"from,omitempty"`
	// +optional
	User string `json:"user,omitempty"`
	// +optional
	Password string `json:"password,omitempty"`
	// +optional
	AuthType *int64 `json:"auth_type,omitempty"`
	// +optional
	Encryption *int64 `json:"encryption,omitempty"`
	// +optional
	Domain string `json:"domain,omitempty"`
	// +optional
	TemplatesPath string `json:"templates_path,omitempty"`
}
