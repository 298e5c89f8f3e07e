// Package routerconfig implements a simulated home router session and the
// WiFi password policy used when changing the router's WiFi credentials.
//
// There is no real device traffic. Connect and ApplyWiFi complete after a
// fixed delay; the only logic with a real contract is the password policy.
//
// # Password Policy
//
// The default policy requires at least 10 characters with at least one
// uppercase letter, one lowercase letter and one digit:
//
//	check := routerconfig.ValidateWiFiPassword("Abcdefg123")
//	if !check.OK() {
//	    for _, err := range check.Errors {
//	        fmt.Println(routerconfig.GetShortErrorMessage(err))
//	    }
//	}
//
// Every failed rule is reported. A missing character class error lists each
// missing class in RouterError.Missing.
//
// # Router Session
//
//	router := routerconfig.NewRouter()
//	err := router.Connect(ctx, routerconfig.Credentials{
//	    Address:  routerconfig.DefaultAddress,
//	    Username: "admin",
//	    Password: "secret",
//	})
//	result, err := router.ApplyWiFi(ctx, routerconfig.WiFiSettings{
//	    SSID:     "HomeNet",
//	    Password: "Abcdefg123",
//	})
//
// Empty fields fail with a MissingField error before any delay. Connect is
// decided by an Authenticator; the default PlaceholderAuthenticator accepts
// "admin" with any password of 4 or more characters and is not a real login.
//
// # Thread Safety
//
// Router is safe for concurrent use. Connect and ApplyWiFi are tracked in an
// InFlight set: triggering an operation that is already pending fails with a
// Busy error, while different operations run independently.
package routerconfig
