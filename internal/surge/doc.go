// Package surge provides a client for sending SMS through the Surge
// messaging API (https://surge.app).
//
// The client is bound to a single recipient profile resolved from
// configuration at startup: every message goes to the same contact. Sending
// is fire-and-report; there is no retry and no delivery-status polling.
//
// Authentication uses a bearer API key plus a Surge-Account header carrying
// the account identifier.
//
// Example usage:
//
//	client, err := surge.NewClient(apiKey, accountID, surge.Recipient{
//	    FirstName:   "Ada",
//	    LastName:    "Lovelace",
//	    PhoneNumber: "+15551234567",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.SendMessage(ctx, "Concert tonight at 8!"); err != nil {
//	    log.Fatal(err)
//	}
package surge
