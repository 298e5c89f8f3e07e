package urls

// Documentation URLs for guides and troubleshooting.
// All URLs point to the documentation site at https://muurk.github.io/routercfg/

// Repository is the project home
const Repository = "https://github.com/muurk/routercfg"

// PasswordPolicy explains the WiFi password rules and how to change them
// in the config file.
const PasswordPolicy = "https://muurk.github.io/routercfg/guides/password-policy/"

// RouterDiscovery covers 'routercfg scan' and what to do when the router
// does not advertise itself.
const RouterDiscovery = "https://muurk.github.io/routercfg/guides/finding-your-router/"

// Configuration documents every config file key.
const Configuration = "https://muurk.github.io/routercfg/reference/config-file/"

// TroubleshootingGuide provides solutions to common connect and apply failures.
const TroubleshootingGuide = "https://muurk.github.io/routercfg/troubleshooting/"
