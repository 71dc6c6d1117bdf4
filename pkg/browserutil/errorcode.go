package browserutil

import (
	"slices"
	"strconv"
)

// ErrorCode is a navigation error code reported by the browser engine when
// a load fails. Values match the engine's net error list; codes not in the
// table are still valid ErrorCode values and describe as UnknownErrorString.
type ErrorCode int

// Navigation error codes. Ranges:
//
//	  0 to  -99  system
//	-100 to -199 connection
//	-200 to -299 certificate
//	-300 to -399 http
//	-400 to -499 cache
//	-800 to -899 dns
//	anything else below -499 other
const (
	CodeNone                           ErrorCode = 0
	CodeFailed                         ErrorCode = -2
	CodeAborted                        ErrorCode = -3
	CodeInvalidArgument                ErrorCode = -4
	CodeInvalidHandle                  ErrorCode = -5
	CodeFileNotFound                   ErrorCode = -6
	CodeTimedOut                       ErrorCode = -7
	CodeFileTooBig                     ErrorCode = -8
	CodeUnexpected                     ErrorCode = -9
	CodeAccessDenied                   ErrorCode = -10
	CodeNotImplemented                 ErrorCode = -11
	CodeInsufficientResources          ErrorCode = -12
	CodeOutOfMemory                    ErrorCode = -13
	CodeUploadFileChanged              ErrorCode = -14
	CodeSocketNotConnected             ErrorCode = -15
	CodeFileExists                     ErrorCode = -16
	CodeFilePathTooLong                ErrorCode = -17
	CodeFileNoSpace                    ErrorCode = -18
	CodeFileVirusInfected              ErrorCode = -19
	CodeBlockedByClient                ErrorCode = -20
	CodeNetworkChanged                 ErrorCode = -21
	CodeBlockedByAdministrator         ErrorCode = -22
	CodeSocketIsConnected              ErrorCode = -23
	CodeUploadStreamRewindNotSupport   ErrorCode = -25
	CodeContextShutDown                ErrorCode = -26
	CodeBlockedByResponse              ErrorCode = -27
	CodeCleartextNotPermitted          ErrorCode = -29
	CodeBlockedByCSP                   ErrorCode = -30
	CodeConnectionClosed               ErrorCode = -100
	CodeConnectionReset                ErrorCode = -101
	CodeConnectionRefused              ErrorCode = -102
	CodeConnectionAborted              ErrorCode = -103
	CodeConnectionFailed               ErrorCode = -104
	CodeNameNotResolved                ErrorCode = -105
	CodeInternetDisconnected           ErrorCode = -106
	CodeSSLProtocolError               ErrorCode = -107
	CodeAddressInvalid                 ErrorCode = -108
	CodeAddressUnreachable             ErrorCode = -109
	CodeSSLClientAuthCertNeeded        ErrorCode = -110
	CodeTunnelConnectionFailed         ErrorCode = -111
	CodeNoSSLVersionsEnabled           ErrorCode = -112
	CodeSSLVersionOrCipherMismatch     ErrorCode = -113
	CodeSSLRenegotiationRequested      ErrorCode = -114
	CodeProxyAuthUnsupported           ErrorCode = -115
	CodeBadSSLClientAuthCert           ErrorCode = -117
	CodeConnectionTimedOut             ErrorCode = -118
	CodeHostResolverQueueTooLarge      ErrorCode = -119
	CodeSOCKSConnectionFailed          ErrorCode = -120
	CodeSOCKSConnectionHostUnreach     ErrorCode = -121
	CodeALPNNegotiationFailed          ErrorCode = -122
	CodeSSLNoRenegotiation             ErrorCode = -123
	CodeWinsockUnexpectedWrittenBytes  ErrorCode = -124
	CodeSSLDecompressionFailureAlert   ErrorCode = -125
	CodeSSLBadRecordMACAlert           ErrorCode = -126
	CodeProxyAuthRequested             ErrorCode = -127
	CodeProxyConnectionFailed          ErrorCode = -130
	CodeMandatoryProxyConfigFailed     ErrorCode = -131
	CodePreconnectMaxSocketLimit       ErrorCode = -133
	CodeProxyCertificateInvalid        ErrorCode = -136
	CodeNameResolutionFailed           ErrorCode = -137
	CodeNetworkAccessDenied            ErrorCode = -138
	CodeTemporarilyThrottled           ErrorCode = -139
	CodeSSLHandshakeNotCompleted       ErrorCode = -148
	CodeSSLBadPeerPublicKey            ErrorCode = -149
	CodeSSLPinnedKeyNotInCertChain     ErrorCode = -150
	CodeClientAuthCertTypeUnsupported  ErrorCode = -151
	CodeSSLServerCertChanged           ErrorCode = -156
	CodeSSLUnrecognizedNameAlert       ErrorCode = -159
	CodeICANNNameCollision             ErrorCode = -166
	CodeSSLServerCertBadFormat         ErrorCode = -167
	CodeCertCommonNameInvalid          ErrorCode = -200
	CodeCertDateInvalid                ErrorCode = -201
	CodeCertAuthorityInvalid           ErrorCode = -202
	CodeCertContainsErrors             ErrorCode = -203
	CodeCertNoRevocationMechanism      ErrorCode = -204
	CodeCertUnableToCheckRevocation    ErrorCode = -205
	CodeCertRevoked                    ErrorCode = -206
	CodeCertInvalid                    ErrorCode = -207
	CodeCertWeakSignatureAlgorithm     ErrorCode = -208
	CodeCertNonUniqueName              ErrorCode = -210
	CodeCertWeakKey                    ErrorCode = -211
	CodeCertNameConstraintViolation    ErrorCode = -212
	CodeCertValidityTooLong            ErrorCode = -213
	CodeCertificateTransparencyReq     ErrorCode = -214
	CodeCertSymantecLegacy             ErrorCode = -215
	CodeCertKnownInterceptionBlocked   ErrorCode = -217
	CodeCertEnd                        ErrorCode = -219
	CodeInvalidURL                     ErrorCode = -300
	CodeDisallowedURLScheme            ErrorCode = -301
	CodeUnknownURLScheme               ErrorCode = -302
	CodeInvalidRedirect                ErrorCode = -303
	CodeTooManyRedirects               ErrorCode = -310
	CodeUnsafeRedirect                 ErrorCode = -311
	CodeUnsafePort                     ErrorCode = -312
	CodeInvalidResponse                ErrorCode = -320
	CodeInvalidChunkedEncoding         ErrorCode = -321
	CodeMethodNotSupported             ErrorCode = -322
	CodeUnexpectedProxyAuth            ErrorCode = -323
	CodeEmptyResponse                  ErrorCode = -324
	CodeResponseHeadersTooBig          ErrorCode = -325
	CodePACScriptFailed                ErrorCode = -327
	CodeRequestRangeNotSatisfiable     ErrorCode = -328
	CodeMalformedIdentity              ErrorCode = -329
	CodeContentDecodingFailed          ErrorCode = -330
	CodeNetworkIOSuspended             ErrorCode = -331
	CodeNoSupportedProxies             ErrorCode = -336
	CodeHTTP2ProtocolError             ErrorCode = -337
	CodeInvalidAuthCredentials         ErrorCode = -338
	CodeUnsupportedAuthScheme          ErrorCode = -339
	CodeEncodingDetectionFailed        ErrorCode = -340
	CodeMissingAuthCredentials         ErrorCode = -341
	CodeUnexpectedSecurityLibStatus    ErrorCode = -342
	CodeMisconfiguredAuthEnvironment   ErrorCode = -343
	CodeUndocumentedSecurityLibStatus  ErrorCode = -344
	CodeResponseBodyTooBigToDrain      ErrorCode = -345
	CodeResponseHeadersMultipleLength  ErrorCode = -346
	CodeIncompleteHTTP2Headers         ErrorCode = -347
	CodePACNotInDHCP                   ErrorCode = -348
	CodeResponseHeadersMultipleDisp    ErrorCode = -349
	CodeResponseHeadersMultipleLoc     ErrorCode = -350
	CodeHTTP2ServerRefusedStream       ErrorCode = -351
	CodeHTTP2PingFailed                ErrorCode = -352
	CodeContentLengthMismatch          ErrorCode = -354
	CodeIncompleteChunkedEncoding      ErrorCode = -355
	CodeQUICProtocolError              ErrorCode = -356
	CodeResponseHeadersTruncated       ErrorCode = -357
	CodeQUICHandshakeFailed            ErrorCode = -358
	CodeHTTP2InadequateTransportSec    ErrorCode = -360
	CodeHTTP2FlowControlError          ErrorCode = -361
	CodeHTTP2FrameSizeError            ErrorCode = -362
	CodeHTTP2CompressionError          ErrorCode = -363
	CodeProxyAuthRequestedWithNoConn   ErrorCode = -364
	CodeHTTP11Required                 ErrorCode = -365
	CodeProxyHTTP11Required            ErrorCode = -366
	CodePACScriptTerminated            ErrorCode = -367
	CodeInvalidHTTPResponse            ErrorCode = -370
	CodeContentDecodingInitFailed      ErrorCode = -371
	CodeHTTP2RSTStreamNoErrorReceived  ErrorCode = -372
	CodeTooManyRetries                 ErrorCode = -375
	CodeHTTP2StreamClosed              ErrorCode = -376
	CodeHTTPResponseCodeFailure        ErrorCode = -379
	CodeQUICCertRootNotKnown           ErrorCode = -380
	CodeCacheMiss                      ErrorCode = -400
	CodeCacheReadFailure               ErrorCode = -401
	CodeCacheWriteFailure              ErrorCode = -402
	CodeCacheOperationNotSupported     ErrorCode = -403
	CodeCacheOpenFailure               ErrorCode = -404
	CodeCacheCreateFailure             ErrorCode = -405
	CodeCacheRace                      ErrorCode = -406
	CodeCacheChecksumReadFailure       ErrorCode = -407
	CodeCacheChecksumMismatch          ErrorCode = -408
	CodeCacheLockTimeout               ErrorCode = -409
	CodeCacheAuthFailureAfterRead      ErrorCode = -410
	CodeCacheEntryNotSuitable          ErrorCode = -411
	CodeCacheDoomFailure               ErrorCode = -412
	CodeCacheOpenOrCreateFailure       ErrorCode = -413
	CodeInsecureResponse               ErrorCode = -501
	CodeNoPrivateKeyForCert            ErrorCode = -502
	CodeAddUserCertFailed              ErrorCode = -503
	CodeInvalidSignedExchange          ErrorCode = -504
	CodeInvalidWebBundle               ErrorCode = -505
	CodeTrustTokenOperationFailed      ErrorCode = -506
	CodeTrustTokenOperationSuccessNoop ErrorCode = -507
	CodeFTPFailed                      ErrorCode = -601
	CodeFTPServiceUnavailable          ErrorCode = -602
	CodeFTPTransferAborted             ErrorCode = -603
	CodeFTPFileBusy                    ErrorCode = -604
	CodeFTPSyntaxError                 ErrorCode = -605
	CodeFTPCommandNotSupported         ErrorCode = -606
	CodeFTPBadCommandSequence          ErrorCode = -607
	CodePKCS12ImportBadPassword        ErrorCode = -701
	CodePKCS12ImportFailed             ErrorCode = -702
	CodeImportCACertNotCA              ErrorCode = -703
	CodeImportCertAlreadyExists        ErrorCode = -704
	CodeImportCACertFailed             ErrorCode = -705
	CodeImportServerCertFailed         ErrorCode = -706
	CodePKCS12ImportInvalidMAC         ErrorCode = -707
	CodePKCS12ImportInvalidFile        ErrorCode = -708
	CodePKCS12ImportUnsupported        ErrorCode = -709
	CodeKeyGenerationFailed            ErrorCode = -710
	CodePrivateKeyExportFailed         ErrorCode = -712
	CodeSelfSignedCertGenFailed        ErrorCode = -713
	CodeCertDatabaseChanged            ErrorCode = -714
	CodeDNSMalformedResponse           ErrorCode = -800
	CodeDNSServerRequiresTCP           ErrorCode = -801
	CodeDNSServerFailed                ErrorCode = -802
	CodeDNSTimedOut                    ErrorCode = -803
	CodeDNSCacheMiss                   ErrorCode = -804
	CodeDNSSearchEmpty                 ErrorCode = -805
	CodeDNSSortError                   ErrorCode = -806
	CodeDNSSecureResolverHostnameRes   ErrorCode = -808
	CodeDNSNameHTTPSOnly               ErrorCode = -809
	CodeDNSRequestCancelled            ErrorCode = -810
	CodeDNSNoMatchingSupportedALPN     ErrorCode = -811
)

// UnknownErrorString describes codes missing from the table.
const UnknownErrorString = "Unknown error"

type errorInfo struct {
	name string
	text string
}

var errorTable = map[ErrorCode]errorInfo{
	CodeNone:                           {"ERR_NONE", "No error"},
	CodeFailed:                         {"ERR_FAILED", "A generic failure occurred"},
	CodeAborted:                        {"ERR_ABORTED", "The operation was aborted"},
	CodeInvalidArgument:                {"ERR_INVALID_ARGUMENT", "An argument to the function is incorrect"},
	CodeInvalidHandle:                  {"ERR_INVALID_HANDLE", "The handle or file descriptor is invalid"},
	CodeFileNotFound:                   {"ERR_FILE_NOT_FOUND", "The file or directory cannot be found"},
	CodeTimedOut:                       {"ERR_TIMED_OUT", "The operation timed out"},
	CodeFileTooBig:                     {"ERR_FILE_TOO_BIG", "The file is too large"},
	CodeUnexpected:                     {"ERR_UNEXPECTED", "An unexpected error occurred"},
	CodeAccessDenied:                   {"ERR_ACCESS_DENIED", "Permission to access a resource was denied"},
	CodeNotImplemented:                 {"ERR_NOT_IMPLEMENTED", "The operation failed because of unimplemented functionality"},
	CodeInsufficientResources:          {"ERR_INSUFFICIENT_RESOURCES", "There were not enough resources to complete the operation"},
	CodeOutOfMemory:                    {"ERR_OUT_OF_MEMORY", "Memory allocation failed"},
	CodeUploadFileChanged:              {"ERR_UPLOAD_FILE_CHANGED", "The file upload failed because the file changed after it was selected"},
	CodeSocketNotConnected:             {"ERR_SOCKET_NOT_CONNECTED", "The socket is not connected"},
	CodeFileExists:                     {"ERR_FILE_EXISTS", "The file already exists"},
	CodeFilePathTooLong:                {"ERR_FILE_PATH_TOO_LONG", "The path or file name is too long"},
	CodeFileNoSpace:                    {"ERR_FILE_NO_SPACE", "Not enough room left on the disk"},
	CodeFileVirusInfected:              {"ERR_FILE_VIRUS_INFECTED", "The file has a virus"},
	CodeBlockedByClient:                {"ERR_BLOCKED_BY_CLIENT", "The request was blocked by the client"},
	CodeNetworkChanged:                 {"ERR_NETWORK_CHANGED", "The network changed"},
	CodeBlockedByAdministrator:         {"ERR_BLOCKED_BY_ADMINISTRATOR", "The request was blocked by the URL block list configured by the administrator"},
	CodeSocketIsConnected:              {"ERR_SOCKET_IS_CONNECTED", "The socket is already connected"},
	CodeUploadStreamRewindNotSupport:   {"ERR_UPLOAD_STREAM_REWIND_NOT_SUPPORTED", "The upload failed because the upload stream needed to be re-read but could not be"},
	CodeContextShutDown:                {"ERR_CONTEXT_SHUT_DOWN", "The request failed because the request context is shutting down"},
	CodeBlockedByResponse:              {"ERR_BLOCKED_BY_RESPONSE", "The request failed because the response was delivered along with requirements which are not met"},
	CodeCleartextNotPermitted:          {"ERR_CLEARTEXT_NOT_PERMITTED", "Cleartext traffic is not permitted"},
	CodeBlockedByCSP:                   {"ERR_BLOCKED_BY_CSP", "The request was blocked by a Content Security Policy"},
	CodeConnectionClosed:               {"ERR_CONNECTION_CLOSED", "The connection was closed"},
	CodeConnectionReset:                {"ERR_CONNECTION_RESET", "The connection was reset"},
	CodeConnectionRefused:              {"ERR_CONNECTION_REFUSED", "The connection was refused"},
	CodeConnectionAborted:              {"ERR_CONNECTION_ABORTED", "The connection timed out because no ACK was received for the data sent"},
	CodeConnectionFailed:               {"ERR_CONNECTION_FAILED", "The connection attempt failed"},
	CodeNameNotResolved:                {"ERR_NAME_NOT_RESOLVED", "The host name could not be resolved"},
	CodeInternetDisconnected:           {"ERR_INTERNET_DISCONNECTED", "The Internet connection has been lost"},
	CodeSSLProtocolError:               {"ERR_SSL_PROTOCOL_ERROR", "An SSL protocol error occurred"},
	CodeAddressInvalid:                 {"ERR_ADDRESS_INVALID", "The IP address or port number is invalid"},
	CodeAddressUnreachable:             {"ERR_ADDRESS_UNREACHABLE", "The IP address is unreachable"},
	CodeSSLClientAuthCertNeeded:        {"ERR_SSL_CLIENT_AUTH_CERT_NEEDED", "The server requested a client certificate for SSL client authentication"},
	CodeTunnelConnectionFailed:         {"ERR_TUNNEL_CONNECTION_FAILED", "A tunnel connection through the proxy could not be established"},
	CodeNoSSLVersionsEnabled:           {"ERR_NO_SSL_VERSIONS_ENABLED", "No SSL protocol versions are enabled"},
	CodeSSLVersionOrCipherMismatch:     {"ERR_SSL_VERSION_OR_CIPHER_MISMATCH", "The client and server don't support a common SSL protocol version or cipher suite"},
	CodeSSLRenegotiationRequested:      {"ERR_SSL_RENEGOTIATION_REQUESTED", "The server requested a renegotiation (rehandshake)"},
	CodeProxyAuthUnsupported:           {"ERR_PROXY_AUTH_UNSUPPORTED", "The proxy requested authentication with an unsupported method"},
	CodeBadSSLClientAuthCert:           {"ERR_BAD_SSL_CLIENT_AUTH_CERT", "The SSL handshake failed because of a bad or missing client certificate"},
	CodeConnectionTimedOut:             {"ERR_CONNECTION_TIMED_OUT", "The connection attempt timed out"},
	CodeHostResolverQueueTooLarge:      {"ERR_HOST_RESOLVER_QUEUE_TOO_LARGE", "There are too many pending DNS resolves"},
	CodeSOCKSConnectionFailed:          {"ERR_SOCKS_CONNECTION_FAILED", "Failed establishing a connection to the SOCKS proxy server"},
	CodeSOCKSConnectionHostUnreach:     {"ERR_SOCKS_CONNECTION_HOST_UNREACHABLE", "The SOCKS proxy server failed establishing a connection to the target host"},
	CodeALPNNegotiationFailed:          {"ERR_ALPN_NEGOTIATION_FAILED", "The request to negotiate an alternate protocol failed"},
	CodeSSLNoRenegotiation:             {"ERR_SSL_NO_RENEGOTIATION", "The peer sent an SSL no_renegotiation alert message"},
	CodeWinsockUnexpectedWrittenBytes:  {"ERR_WINSOCK_UNEXPECTED_WRITTEN_BYTES", "Winsock sometimes reports more data written than passed"},
	CodeSSLDecompressionFailureAlert:   {"ERR_SSL_DECOMPRESSION_FAILURE_ALERT", "The SSL peer sent a fatal decompression_failure alert"},
	CodeSSLBadRecordMACAlert:           {"ERR_SSL_BAD_RECORD_MAC_ALERT", "The SSL peer sent a fatal bad_record_mac alert"},
	CodeProxyAuthRequested:             {"ERR_PROXY_AUTH_REQUESTED", "The proxy requested authentication for tunnel establishment"},
	CodeProxyConnectionFailed:          {"ERR_PROXY_CONNECTION_FAILED", "Could not create a connection to the proxy server"},
	CodeMandatoryProxyConfigFailed:     {"ERR_MANDATORY_PROXY_CONFIGURATION_FAILED", "A mandatory proxy configuration could not be used"},
	CodePreconnectMaxSocketLimit:       {"ERR_PRECONNECT_MAX_SOCKET_LIMIT", "The maximum socket limit was reached during preconnect"},
	CodeProxyCertificateInvalid:        {"ERR_PROXY_CERTIFICATE_INVALID", "The certificate presented by the HTTPS proxy was invalid"},
	CodeNameResolutionFailed:           {"ERR_NAME_RESOLUTION_FAILED", "An error occurred when trying to do a name resolution (DNS)"},
	CodeNetworkAccessDenied:            {"ERR_NETWORK_ACCESS_DENIED", "Permission to access the network was denied"},
	CodeTemporarilyThrottled:           {"ERR_TEMPORARILY_THROTTLED", "The request throttler module cancelled this request"},
	CodeSSLHandshakeNotCompleted:       {"ERR_SSL_HANDSHAKE_NOT_COMPLETED", "The SSL handshake was not completed"},
	CodeSSLBadPeerPublicKey:            {"ERR_SSL_BAD_PEER_PUBLIC_KEY", "The SSL peer's public key is invalid"},
	CodeSSLPinnedKeyNotInCertChain:     {"ERR_SSL_PINNED_KEY_NOT_IN_CERT_CHAIN", "The certificate didn't match the built-in public key pins for the host name"},
	CodeClientAuthCertTypeUnsupported:  {"ERR_CLIENT_AUTH_CERT_TYPE_UNSUPPORTED", "The server requested a client certificate type that is not supported"},
	CodeSSLServerCertChanged:           {"ERR_SSL_SERVER_CERT_CHANGED", "The server's certificate changed during a renegotiation"},
	CodeSSLUnrecognizedNameAlert:       {"ERR_SSL_UNRECOGNIZED_NAME_ALERT", "The SSL server sent an unrecognized_name alert"},
	CodeICANNNameCollision:             {"ERR_ICANN_NAME_COLLISION", "The host name resolved to the ICANN name collision address"},
	CodeSSLServerCertBadFormat:         {"ERR_SSL_SERVER_CERT_BAD_FORMAT", "The SSL server presented a certificate that could not be decoded"},
	CodeCertCommonNameInvalid:          {"ERR_CERT_COMMON_NAME_INVALID", "The server certificate common name does not match the host name"},
	CodeCertDateInvalid:                {"ERR_CERT_DATE_INVALID", "The server certificate has expired or is not yet valid"},
	CodeCertAuthorityInvalid:           {"ERR_CERT_AUTHORITY_INVALID", "The server certificate is signed by an untrusted authority"},
	CodeCertContainsErrors:             {"ERR_CERT_CONTAINS_ERRORS", "The server certificate contains errors"},
	CodeCertNoRevocationMechanism:      {"ERR_CERT_NO_REVOCATION_MECHANISM", "The certificate has no mechanism for determining if it is revoked"},
	CodeCertUnableToCheckRevocation:    {"ERR_CERT_UNABLE_TO_CHECK_REVOCATION", "Revocation information for the certificate is not available"},
	CodeCertRevoked:                    {"ERR_CERT_REVOKED", "The server certificate has been revoked"},
	CodeCertInvalid:                    {"ERR_CERT_INVALID", "The server certificate is invalid"},
	CodeCertWeakSignatureAlgorithm:     {"ERR_CERT_WEAK_SIGNATURE_ALGORITHM", "The server certificate is signed with a weak signature algorithm"},
	CodeCertNonUniqueName:              {"ERR_CERT_NON_UNIQUE_NAME", "The certificate names a host that is not unique"},
	CodeCertWeakKey:                    {"ERR_CERT_WEAK_KEY", "The server certificate contains a weak key"},
	CodeCertNameConstraintViolation:    {"ERR_CERT_NAME_CONSTRAINT_VIOLATION", "The certificate claims DNS names in violation of name constraints"},
	CodeCertValidityTooLong:            {"ERR_CERT_VALIDITY_TOO_LONG", "The certificate's validity period is too long"},
	CodeCertificateTransparencyReq:     {"ERR_CERTIFICATE_TRANSPARENCY_REQUIRED", "Certificate Transparency was required but not present"},
	CodeCertSymantecLegacy:             {"ERR_CERT_SYMANTEC_LEGACY", "The certificate chained to a legacy Symantec root that is no longer trusted"},
	CodeCertKnownInterceptionBlocked:   {"ERR_CERT_KNOWN_INTERCEPTION_BLOCKED", "The certificate is known to be used for interception"},
	CodeCertEnd:                        {"ERR_CERT_END", "End of the certificate error range"},
	CodeInvalidURL:                     {"ERR_INVALID_URL", "The URL is invalid"},
	CodeDisallowedURLScheme:            {"ERR_DISALLOWED_URL_SCHEME", "The scheme of the URL is disallowed"},
	CodeUnknownURLScheme:               {"ERR_UNKNOWN_URL_SCHEME", "The scheme of the URL is unknown"},
	CodeInvalidRedirect:                {"ERR_INVALID_REDIRECT", "An attempt was made to redirect to an invalid URL"},
	CodeTooManyRedirects:               {"ERR_TOO_MANY_REDIRECTS", "There were too many redirects"},
	CodeUnsafeRedirect:                 {"ERR_UNSAFE_REDIRECT", "A redirect to an unsafe scheme was attempted"},
	CodeUnsafePort:                     {"ERR_UNSAFE_PORT", "The URL uses a port that is disallowed"},
	CodeInvalidResponse:                {"ERR_INVALID_RESPONSE", "The server's response was invalid"},
	CodeInvalidChunkedEncoding:         {"ERR_INVALID_CHUNKED_ENCODING", "An error occurred while processing chunked encoding"},
	CodeMethodNotSupported:             {"ERR_METHOD_NOT_SUPPORTED", "The server did not support the request method"},
	CodeUnexpectedProxyAuth:            {"ERR_UNEXPECTED_PROXY_AUTH", "The response was 407 (Proxy Authentication Required) but no proxy was used"},
	CodeEmptyResponse:                  {"ERR_EMPTY_RESPONSE", "The server closed the connection without sending any data"},
	CodeResponseHeadersTooBig:          {"ERR_RESPONSE_HEADERS_TOO_BIG", "The headers section of the response is too large"},
	CodePACScriptFailed:                {"ERR_PAC_SCRIPT_FAILED", "The evaluation of the PAC script failed"},
	CodeRequestRangeNotSatisfiable:     {"ERR_REQUEST_RANGE_NOT_SATISFIABLE", "The requested range could not be satisfied"},
	CodeMalformedIdentity:              {"ERR_MALFORMED_IDENTITY", "The identity used for authentication is invalid"},
	CodeContentDecodingFailed:          {"ERR_CONTENT_DECODING_FAILED", "Content decoding of the response body failed"},
	CodeNetworkIOSuspended:             {"ERR_NETWORK_IO_SUSPENDED", "A network read or write was suspended"},
	CodeNoSupportedProxies:             {"ERR_NO_SUPPORTED_PROXIES", "None of the configured proxies are supported"},
	CodeHTTP2ProtocolError:             {"ERR_HTTP2_PROTOCOL_ERROR", "An HTTP/2 protocol error occurred"},
	CodeInvalidAuthCredentials:         {"ERR_INVALID_AUTH_CREDENTIALS", "The authentication credentials are invalid"},
	CodeUnsupportedAuthScheme:          {"ERR_UNSUPPORTED_AUTH_SCHEME", "The authentication scheme is not supported"},
	CodeEncodingDetectionFailed:        {"ERR_ENCODING_DETECTION_FAILED", "Detecting the encoding of the response failed"},
	CodeMissingAuthCredentials:         {"ERR_MISSING_AUTH_CREDENTIALS", "Authentication credentials are missing"},
	CodeUnexpectedSecurityLibStatus:    {"ERR_UNEXPECTED_SECURITY_LIBRARY_STATUS", "An unexpected security library status code was returned"},
	CodeMisconfiguredAuthEnvironment:   {"ERR_MISCONFIGURED_AUTH_ENVIRONMENT", "The authentication environment is not configured correctly"},
	CodeUndocumentedSecurityLibStatus:  {"ERR_UNDOCUMENTED_SECURITY_LIBRARY_STATUS", "An undocumented security library status code was returned"},
	CodeResponseBodyTooBigToDrain:      {"ERR_RESPONSE_BODY_TOO_BIG_TO_DRAIN", "The response body is too large to drain"},
	CodeResponseHeadersMultipleLength:  {"ERR_RESPONSE_HEADERS_MULTIPLE_CONTENT_LENGTH", "The response contained multiple distinct Content-Length headers"},
	CodeIncompleteHTTP2Headers:         {"ERR_INCOMPLETE_HTTP2_HEADERS", "HTTP/2 headers were incomplete"},
	CodePACNotInDHCP:                   {"ERR_PAC_NOT_IN_DHCP", "No PAC URL configuration could be retrieved from DHCP"},
	CodeResponseHeadersMultipleDisp:    {"ERR_RESPONSE_HEADERS_MULTIPLE_CONTENT_DISPOSITION", "The response contained multiple Content-Disposition headers"},
	CodeResponseHeadersMultipleLoc:     {"ERR_RESPONSE_HEADERS_MULTIPLE_LOCATION", "The response contained multiple distinct Location headers"},
	CodeHTTP2ServerRefusedStream:       {"ERR_HTTP2_SERVER_REFUSED_STREAM", "The HTTP/2 server refused the stream"},
	CodeHTTP2PingFailed:                {"ERR_HTTP2_PING_FAILED", "The HTTP/2 server didn't respond to a PING"},
	CodeContentLengthMismatch:          {"ERR_CONTENT_LENGTH_MISMATCH", "The connection closed before the advertised Content-Length was received"},
	CodeIncompleteChunkedEncoding:      {"ERR_INCOMPLETE_CHUNKED_ENCODING", "The connection closed before the terminal chunk was received"},
	CodeQUICProtocolError:              {"ERR_QUIC_PROTOCOL_ERROR", "A QUIC protocol error occurred"},
	CodeResponseHeadersTruncated:       {"ERR_RESPONSE_HEADERS_TRUNCATED", "The response headers were truncated by an end of stream"},
	CodeQUICHandshakeFailed:            {"ERR_QUIC_HANDSHAKE_FAILED", "The QUIC crypto handshake failed"},
	CodeHTTP2InadequateTransportSec:    {"ERR_HTTP2_INADEQUATE_TRANSPORT_SECURITY", "HTTP/2 transport security is inadequate"},
	CodeHTTP2FlowControlError:          {"ERR_HTTP2_FLOW_CONTROL_ERROR", "The peer violated HTTP/2 flow control"},
	CodeHTTP2FrameSizeError:            {"ERR_HTTP2_FRAME_SIZE_ERROR", "The peer sent an improperly sized HTTP/2 frame"},
	CodeHTTP2CompressionError:          {"ERR_HTTP2_COMPRESSION_ERROR", "Decoding or encoding of compressed HTTP/2 headers failed"},
	CodeProxyAuthRequestedWithNoConn:   {"ERR_PROXY_AUTH_REQUESTED_WITH_NO_CONNECTION", "Proxy authentication was requested without a valid client socket handle"},
	CodeHTTP11Required:                 {"ERR_HTTP_1_1_REQUIRED", "HTTP_1_1_REQUIRED error code received on an HTTP/2 session"},
	CodeProxyHTTP11Required:            {"ERR_PROXY_HTTP_1_1_REQUIRED", "HTTP_1_1_REQUIRED error code received on an HTTP/2 session to a proxy"},
	CodePACScriptTerminated:            {"ERR_PAC_SCRIPT_TERMINATED", "The PAC script terminated fatally"},
	CodeInvalidHTTPResponse:            {"ERR_INVALID_HTTP_RESPONSE", "The server returned a non-HTTP/0.9 response on a port that requires one"},
	CodeContentDecodingInitFailed:      {"ERR_CONTENT_DECODING_INIT_FAILED", "Initializing content decoding failed"},
	CodeHTTP2RSTStreamNoErrorReceived:  {"ERR_HTTP2_RST_STREAM_NO_ERROR_RECEIVED", "An HTTP/2 RST_STREAM NO_ERROR was received before the response was complete"},
	CodeTooManyRetries:                 {"ERR_TOO_MANY_RETRIES", "The request was retried too many times"},
	CodeHTTP2StreamClosed:              {"ERR_HTTP2_STREAM_CLOSED", "A frame was received on a closed HTTP/2 stream"},
	CodeHTTPResponseCodeFailure:        {"ERR_HTTP_RESPONSE_CODE_FAILURE", "The server returned an HTTP error status code"},
	CodeQUICCertRootNotKnown:           {"ERR_QUIC_CERT_ROOT_NOT_KNOWN", "The QUIC certificate is rooted in an unknown authority"},
	CodeCacheMiss:                      {"ERR_CACHE_MISS", "The cache does not have the requested entry"},
	CodeCacheReadFailure:               {"ERR_CACHE_READ_FAILURE", "Unable to read from the disk cache"},
	CodeCacheWriteFailure:              {"ERR_CACHE_WRITE_FAILURE", "Unable to write to the disk cache"},
	CodeCacheOperationNotSupported:     {"ERR_CACHE_OPERATION_NOT_SUPPORTED", "The cache entry does not support the operation"},
	CodeCacheOpenFailure:               {"ERR_CACHE_OPEN_FAILURE", "The disk cache is unable to open the entry"},
	CodeCacheCreateFailure:             {"ERR_CACHE_CREATE_FAILURE", "The disk cache is unable to create the entry"},
	CodeCacheRace:                      {"ERR_CACHE_RACE", "Multiple transactions are racing to create the same disk cache entry"},
	CodeCacheChecksumReadFailure:       {"ERR_CACHE_CHECKSUM_READ_FAILURE", "The cache was unable to read a checksum record on an entry"},
	CodeCacheChecksumMismatch:          {"ERR_CACHE_CHECKSUM_MISMATCH", "The cache found an entry with an invalid checksum"},
	CodeCacheLockTimeout:               {"ERR_CACHE_LOCK_TIMEOUT", "Waiting for the disk cache entry lock timed out"},
	CodeCacheAuthFailureAfterRead:      {"ERR_CACHE_AUTH_FAILURE_AFTER_READ", "Authentication was required after reading a cached response"},
	CodeCacheEntryNotSuitable:          {"ERR_CACHE_ENTRY_NOT_SUITABLE", "The cached entry is not suitable for this request"},
	CodeCacheDoomFailure:               {"ERR_CACHE_DOOM_FAILURE", "The disk cache is unable to doom the entry"},
	CodeCacheOpenOrCreateFailure:       {"ERR_CACHE_OPEN_OR_CREATE_FAILURE", "The disk cache is unable to open or create the entry"},
	CodeInsecureResponse:               {"ERR_INSECURE_RESPONSE", "The server's response was insecure (e.g. there was a certificate error)"},
	CodeNoPrivateKeyForCert:            {"ERR_NO_PRIVATE_KEY_FOR_CERT", "No private key was found for the client certificate"},
	CodeAddUserCertFailed:              {"ERR_ADD_USER_CERT_FAILED", "Adding a certificate to the OS certificate database failed"},
	CodeInvalidSignedExchange:          {"ERR_INVALID_SIGNED_EXCHANGE", "The signed exchange is invalid"},
	CodeInvalidWebBundle:               {"ERR_INVALID_WEB_BUNDLE", "The web bundle is invalid"},
	CodeTrustTokenOperationFailed:      {"ERR_TRUST_TOKEN_OPERATION_FAILED", "A trust token operation failed"},
	CodeTrustTokenOperationSuccessNoop: {"ERR_TRUST_TOKEN_OPERATION_SUCCESS_WITHOUT_SENDING_REQUEST", "A trust token operation succeeded without sending the request"},
	CodeFTPFailed:                      {"ERR_FTP_FAILED", "A generic FTP error occurred"},
	CodeFTPServiceUnavailable:          {"ERR_FTP_SERVICE_UNAVAILABLE", "The FTP server cannot fulfill the request at this time"},
	CodeFTPTransferAborted:             {"ERR_FTP_TRANSFER_ABORTED", "The FTP server has aborted the transfer"},
	CodeFTPFileBusy:                    {"ERR_FTP_FILE_BUSY", "The FTP file is busy"},
	CodeFTPSyntaxError:                 {"ERR_FTP_SYNTAX_ERROR", "The FTP server could not understand the command"},
	CodeFTPCommandNotSupported:         {"ERR_FTP_COMMAND_NOT_SUPPORTED", "The FTP server does not support the command"},
	CodeFTPBadCommandSequence:          {"ERR_FTP_BAD_COMMAND_SEQUENCE", "The FTP commands were sent in the wrong order"},
	CodePKCS12ImportBadPassword:        {"ERR_PKCS12_IMPORT_BAD_PASSWORD", "The PKCS #12 import failed due to an incorrect password"},
	CodePKCS12ImportFailed:             {"ERR_PKCS12_IMPORT_FAILED", "The PKCS #12 import failed"},
	CodeImportCACertNotCA:              {"ERR_IMPORT_CA_CERT_NOT_CA", "The CA import failed because the certificate is not a CA"},
	CodeImportCertAlreadyExists:        {"ERR_IMPORT_CERT_ALREADY_EXISTS", "The certificate already exists in the database"},
	CodeImportCACertFailed:             {"ERR_IMPORT_CA_CERT_FAILED", "The CA certificate import failed"},
	CodeImportServerCertFailed:         {"ERR_IMPORT_SERVER_CERT_FAILED", "The server certificate import failed"},
	CodePKCS12ImportInvalidMAC:         {"ERR_PKCS12_IMPORT_INVALID_MAC", "The PKCS #12 import failed due to an invalid MAC"},
	CodePKCS12ImportInvalidFile:        {"ERR_PKCS12_IMPORT_INVALID_FILE", "The PKCS #12 import failed due to an invalid or corrupt file"},
	CodePKCS12ImportUnsupported:        {"ERR_PKCS12_IMPORT_UNSUPPORTED", "The PKCS #12 import failed due to an unsupported feature"},
	CodeKeyGenerationFailed:            {"ERR_KEY_GENERATION_FAILED", "Key generation failed"},
	CodePrivateKeyExportFailed:         {"ERR_PRIVATE_KEY_EXPORT_FAILED", "Failed to export the private key"},
	CodeSelfSignedCertGenFailed:        {"ERR_SELF_SIGNED_CERT_GENERATION_FAILED", "Self-signed certificate generation failed"},
	CodeCertDatabaseChanged:            {"ERR_CERT_DATABASE_CHANGED", "The certificate database changed during the operation"},
	CodeDNSMalformedResponse:           {"ERR_DNS_MALFORMED_RESPONSE", "The DNS resolver received a malformed response"},
	CodeDNSServerRequiresTCP:           {"ERR_DNS_SERVER_REQUIRES_TCP", "The DNS server requires TCP"},
	CodeDNSServerFailed:                {"ERR_DNS_SERVER_FAILED", "The DNS server failed"},
	CodeDNSTimedOut:                    {"ERR_DNS_TIMED_OUT", "The DNS transaction timed out"},
	CodeDNSCacheMiss:                   {"ERR_DNS_CACHE_MISS", "The entry was not found in the DNS cache"},
	CodeDNSSearchEmpty:                 {"ERR_DNS_SEARCH_EMPTY", "The suffix search list rules prevented resolution of the name"},
	CodeDNSSortError:                   {"ERR_DNS_SORT_ERROR", "Failed to sort the addresses from the DNS response"},
	CodeDNSSecureResolverHostnameRes:   {"ERR_DNS_SECURE_RESOLVER_HOSTNAME_RESOLUTION_FAILED", "Failed to resolve the host name of a DNS-over-HTTPS server"},
	CodeDNSNameHTTPSOnly:               {"ERR_DNS_NAME_HTTPS_ONLY", "The DNS name may only be accessed over a secure scheme"},
	CodeDNSRequestCancelled:            {"ERR_DNS_REQUEST_CANCELLED", "All DNS requests associated with this job were cancelled"},
	CodeDNSNoMatchingSupportedALPN:     {"ERR_DNS_NO_MATCHING_SUPPORTED_ALPN", "The host name has no endpoint with a supported protocol"},
}

// sortedCodes holds the table keys from 0 downwards.
var sortedCodes = func() []ErrorCode {
	codes := make([]ErrorCode, 0, len(errorTable))
	for code := range errorTable {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	slices.Reverse(codes)
	return codes
}()

// GetErrorString returns a human-readable description of code, or
// UnknownErrorString when the code is not in the table.
func GetErrorString(code ErrorCode) string {
	if info, ok := errorTable[code]; ok {
		return info.text
	}
	return UnknownErrorString
}

// String returns the engine constant name, e.g. "ERR_NAME_NOT_RESOLVED",
// or "UNKNOWN".
func (c ErrorCode) String() string {
	if info, ok := errorTable[c]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// Known reports whether c is in the table.
func (c ErrorCode) Known() bool {
	_, ok := errorTable[c]
	return ok
}

// Int returns c as a plain int, as carried over the bridge.
func (c ErrorCode) Int() int {
	return int(c)
}

// KnownErrorCodes returns every code in the table, from CodeNone downwards.
// The slice is a copy.
func KnownErrorCodes() []ErrorCode {
	return slices.Clone(sortedCodes)
}

// ErrorCategory groups error codes by the range they fall in.
type ErrorCategory int

const (
	CategoryUnknown ErrorCategory = iota
	CategorySystem
	CategoryConnection
	CategoryCertificate
	CategoryHTTP
	CategoryCache
	CategoryDNS
	CategoryOther
)

func (c ErrorCategory) String() string {
	switch c {
	case CategorySystem:
		return "system"
	case CategoryConnection:
		return "connection"
	case CategoryCertificate:
		return "certificate"
	case CategoryHTTP:
		return "http"
	case CategoryCache:
		return "cache"
	case CategoryDNS:
		return "dns"
	case CategoryOther:
		return "other"
	default:
		return "unknown"
	}
}

// Category returns the range c belongs to. Positive codes are not errors
// and report CategoryUnknown.
func (c ErrorCode) Category() ErrorCategory {
	switch {
	case c > 0:
		return CategoryUnknown
	case c > -100:
		return CategorySystem
	case c > -200:
		return CategoryConnection
	case c > -300:
		return CategoryCertificate
	case c > -400:
		return CategoryHTTP
	case c > -500:
		return CategoryCache
	case c <= -800 && c > -900:
		return CategoryDNS
	default:
		return CategoryOther
	}
}

// ParseErrorCode accepts either a numeric code ("-105") or a constant name
// ("ERR_NAME_NOT_RESOLVED").
func ParseErrorCode(s string) (ErrorCode, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return ErrorCode(n), true
	}
	for code, info := range errorTable {
		if info.name == s {
			return code, true
		}
	}
	return 0, false
}
