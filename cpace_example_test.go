package cpace

import (
	"bytes"
	"fmt"
)

func ExampleStart() {
	password := []byte("password")
	clientID := []byte("client")
	serverID := []byte("server")
	ad := []byte("ad")

	// The client starts the protocol and sends its packet to the server.
	client, err := Start(password, clientID, serverID, ad)
	if err != nil {
		panic(err)
	}

	// The server answers in a single call: it already holds its session keys and sends its own
	// packet back to the client.
	server, err := Respond(client.Packet(), password, clientID, serverID, ad)
	if err != nil {
		panic(err)
	}

	// The client receives the server's packet and derives its session keys.
	clientKeys, err := client.Finish(server.Packet())
	if err != nil {
		panic(err)
	}

	// The protocol is finished, and both parties now share the same secret session keys.
	serverKeys := server.SharedKeys()
	if bytes.Equal(clientKeys.K1, serverKeys.K1) && bytes.Equal(clientKeys.K2, serverKeys.K2) {
		fmt.Println("Success ! Both parties share the same secret session keys !")
	} else {
		fmt.Println("Failed. Client and server keys are different.")
	}
	// Output: Success ! Both parties share the same secret session keys !
}
